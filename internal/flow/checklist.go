package flow

type ChecklistItem struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

var SafetyChecklist = []ChecklistItem{
	{ID: "1", Text: "Verify pet companion's identity and credentials"},
	{ID: "2", Text: "Share emergency contact information"},
	{ID: "3", Text: "Provide pet's medical history and current medications"},
	{ID: "4", Text: "Discuss feeding schedule and dietary restrictions"},
	{ID: "5", Text: "Review behavioral notes and special care instructions"},
	{ID: "6", Text: "Exchange contact information for updates"},
	{ID: "7", Text: "Confirm pickup and drop-off location and time"},
	{ID: "8", Text: "Take photo of pet before handoff"},
}

// Checklist tracks which safety items are ticked. Nothing is persisted until every item is
// checked and the visitor confirms.
type Checklist struct {
	items   []ChecklistItem
	checked map[string]bool
}

func NewChecklist(items []ChecklistItem) *Checklist {
	return &Checklist{items: items, checked: make(map[string]bool, len(items))}
}

// Restore builds a checklist with the given ids ticked. Unknown ids are ignored.
func Restore(items []ChecklistItem, checked []string) *Checklist {
	c := NewChecklist(items)
	for _, id := range checked {
		if c.known(id) {
			c.checked[id] = true
		}
	}
	return c
}

func (c *Checklist) known(id string) bool {
	for _, it := range c.items {
		if it.ID == id {
			return true
		}
	}
	return false
}

// Toggle flips one item and reports whether it is now checked.
func (c *Checklist) Toggle(id string) bool {
	if !c.known(id) {
		return false
	}
	if c.checked[id] {
		delete(c.checked, id)
		return false
	}
	c.checked[id] = true
	return true
}

func (c *Checklist) IsChecked(id string) bool { return c.checked[id] }

func (c *Checklist) CheckedCount() int { return len(c.checked) }

func (c *Checklist) Total() int { return len(c.items) }

// Checked returns the ticked ids in item order.
func (c *Checklist) Checked() []string {
	out := make([]string, 0, len(c.checked))
	for _, it := range c.items {
		if c.checked[it.ID] {
			out = append(out, it.ID)
		}
	}
	return out
}

// Progress is the ticked share in percent.
func (c *Checklist) Progress() float64 {
	if len(c.items) == 0 {
		return 0
	}
	return float64(len(c.checked)) / float64(len(c.items)) * 100
}

func (c *Checklist) IsComplete() bool {
	return len(c.items) > 0 && len(c.checked) == len(c.items)
}

// ShowCompletion tells whether the completion banner is visible; it follows IsComplete.
func (c *Checklist) ShowCompletion() bool { return c.IsComplete() }
