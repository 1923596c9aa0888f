package dialog

import "strings"

// Category is the coarse device class used for price catalog lookups.
type Category string

const (
	CategoryPhone   Category = "phone"
	CategoryTablet  Category = "tablet"
	CategoryConsole Category = "console"
)

// Slots are the structured values pulled out of free-text speech.
// Model and Issue may both be empty; the decision engine tolerates partial
// extraction.
type Slots struct {
	Category Category `json:"category"`
	Model    string   `json:"model,omitempty"`
	Issue    string   `json:"issue,omitempty"`
}

// modelRules maps spoken phrases to a normalized model name and category.
// FIRST match wins, so more specific phrases must be listed before the
// generic ones they contain ("iphone 13 pro" before "iphone 13").
var modelRules = []struct {
	phrase   string
	model    string
	category Category
}{
	{"iphone 13 pro", "iPhone 13 Pro", CategoryPhone},
	{"iphone 13", "iPhone 13", CategoryPhone},
	{"iphone 14 pro", "iPhone 14 Pro", CategoryPhone},
	{"iphone 14", "iPhone 14", CategoryPhone},
	{"ipad air 4", "iPad Air 4", CategoryTablet},
	{"ipad pro", "iPad Pro", CategoryTablet},
	{"ps5", "PS5", CategoryConsole},
	{"playstation 5", "PS5", CategoryConsole},
	{"xbox series x", "Xbox Series X", CategoryConsole},
}

// issueRules maps spoken phrases to a normalized issue. FIRST match wins.
// An issue rule may force the category regardless of any model match
// (an HDMI complaint is a console job even if no console model was said).
var issueRules = []struct {
	phrase        string
	issue         string
	forceCategory Category
}{
	{"screen", "screen", ""},
	{"battery", "battery", ""},
	{"charging", "charging port", ""},
	{"hdmi", "hdmi port", CategoryConsole},
}

// ExtractSlots pulls a device model and issue out of an utterance.
// Pure function; the default category is phone.
func ExtractSlots(utterance string) Slots {
	lower := strings.ToLower(utterance)
	out := Slots{Category: CategoryPhone}

	for _, rule := range modelRules {
		if strings.Contains(lower, rule.phrase) {
			out.Model = rule.model
			out.Category = rule.category
			break
		}
	}

	for _, rule := range issueRules {
		if strings.Contains(lower, rule.phrase) {
			out.Issue = rule.issue
			if rule.forceCategory != "" {
				out.Category = rule.forceCategory
			}
			break
		}
	}

	return out
}
