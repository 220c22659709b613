package quiz

// Band is a grade bucket for a percentage score.
type Band int

const (
	BandExcellent Band = iota
	BandVeryGood
	BandGood
	BandNeedsWork
)

var bandLabels = map[Band]string{
	BandExcellent: "ممتاز",
	BandVeryGood:  "جيد جداً",
	BandGood:      "جيد",
	BandNeedsWork: "يحتاج تحسين",
}

var bandMessages = map[Band]string{
	BandExcellent: "أداء رائع! لديك إتقان ممتاز لهذا الموضوع.",
	BandVeryGood:  "أداء جيد جداً! لديك فهم قوي.",
	BandGood:      "أداء مقبول. يُنصح بمراجعة بعض النقاط.",
	BandNeedsWork: "ينصح بمراجعة شاملة للموضوع.",
}

// bandThresholds lists bands by descending minimum percentage.
var bandThresholds = []struct {
	band Band
	min  int
}{
	{BandExcellent, 90},
	{BandVeryGood, 80},
	{BandGood, 70},
}

// GradeBand maps a percentage to its band.
func GradeBand(pct int) Band {
	for _, t := range bandThresholds {
		if pct >= t.min {
			return t.band
		}
	}
	return BandNeedsWork
}

// Label returns the Arabic band name.
func (b Band) Label() string { return bandLabels[b] }

// Message returns the encouragement shown with the band.
func (b Band) Message() string { return bandMessages[b] }
