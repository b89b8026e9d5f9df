package catalog

import "pawconnect/internal/domain"

// DefaultPets is the built-in catalog. A session whose pets slot is empty gets a copy.
var DefaultPets = []domain.Pet{
	{
		ID:          "1",
		Name:        "Max",
		Breed:       "Golden Retriever",
		Age:         3,
		Behavior:    "Friendly, Energetic",
		Available:   true,
		ImageURL:    "/assets/pets/golden-retriever.png",
		Description: "Max is a loving and energetic golden retriever who loves to play fetch and go on long walks. Great with kids and other pets!",
	},
	{
		ID:          "2",
		Name:        "Bella",
		Breed:       "Beagle",
		Age:         2,
		Behavior:    "Playful, Curious",
		Available:   true,
		ImageURL:    "/assets/pets/beagle.png",
		Description: "Bella is a curious beagle with a gentle temperament. She enjoys exploring and sniffing around the park.",
	},
	{
		ID:          "3",
		Name:        "Luna",
		Breed:       "Siberian Husky",
		Age:         4,
		Behavior:    "Active, Loyal",
		Available:   true,
		ImageURL:    "/assets/pets/husky.png",
		Description: "Luna is a beautiful husky with striking blue eyes. She's very active and loves outdoor adventures.",
	},
	{
		ID:          "4",
		Name:        "Whiskers",
		Breed:       "Tabby Cat",
		Age:         1,
		Behavior:    "Independent, Affectionate",
		Available:   true,
		ImageURL:    "/assets/pets/tabby-cat.png",
		Description: "Whiskers is a sweet tabby cat who loves to cuddle after playtime. Independent but very affectionate.",
	},
	{
		ID:          "5",
		Name:        "Oliver",
		Breed:       "British Shorthair",
		Age:         3,
		Behavior:    "Calm, Gentle",
		Available:   true,
		ImageURL:    "/assets/pets/british-shorthair.png",
		Description: "Oliver is a calm and gentle British Shorthair who enjoys quiet companionship and gentle petting.",
	},
	{
		ID:          "6",
		Name:        "Charlie",
		Breed:       "Labrador Retriever",
		Age:         2,
		Behavior:    "Friendly, Social",
		Available:   false,
		ImageURL:    "/assets/pets/labrador.png",
		Description: "Charlie is a friendly chocolate lab who loves meeting new people and other dogs. Great family companion!",
	},
}
