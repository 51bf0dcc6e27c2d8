package models

// Draft is the generated content owned by the create screen. Text and Image
// are produced by separate requests; either may be empty. ID stays the same
// across both requests until the draft is dismissed or the project changes.
type Draft struct {
	ID      string      `json:"id"`
	Project ProjectType `json:"project"`
	Text    string      `json:"text"`
	Image   *string     `json:"image"`
}

// Empty reports whether there is nothing to show or dismiss.
func (d Draft) Empty() bool {
	return d.Text == "" && d.Image == nil
}
