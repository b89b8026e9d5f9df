package flow

type Page string

const (
	PageLogin     Page = "login"
	PageDashboard Page = "dashboard"
	PageCatalog   Page = "catalog"
	PagePlan      Page = "plan"
	PageSchedule  Page = "schedule"
	PageChecklist Page = "checklist"
	PageReview    Page = "review"
	PageNotFound  Page = "not_found"
)

var pagePaths = map[Page]string{
	PageLogin:     "/",
	PageDashboard: "/dashboard",
	PageCatalog:   "/pets",
	PagePlan:      "/subscription",
	PageSchedule:  "/booking",
	PageChecklist: "/checklist",
	PageReview:    "/review",
}

// Path is the route a page is served on. The not-found page has no route of its own.
func (p Page) Path() string {
	return pagePaths[p]
}

// Stage is the flow stage a page is bound to. Login, dashboard and not-found sit outside the
// booking flow and report false.
func (p Page) Stage() (Stage, bool) {
	switch p {
	case PageCatalog:
		return StageNoDraft, true
	case PagePlan:
		return StagePetChosen, true
	case PageSchedule:
		return StagePlanChosen, true
	case PageChecklist:
		return StageScheduled, true
	case PageReview:
		return StageChecklistDone, true
	}
	return 0, false
}
