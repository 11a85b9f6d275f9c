package quiz

import (
	"fmt"
	"strings"

	"github.com/aaronparryphoto/til-demo/pkg/entity"
)

const (
	glyphCorrect = "🟩"
	glyphMissed  = "⬜"
)

// ShareText renders a compact shareable summary of a completed
// attempt: title, date, score and a five-glyph grid in category order.
func ShareText(a entity.Attempt) string {
	t, _ := ParseDate(a.Date)
	var grid strings.Builder
	for _, category := range entity.CategoryOrder {
		if a.Breakdown[category] {
			grid.WriteString(glyphCorrect)
		} else {
			grid.WriteString(glyphMissed)
		}
	}
	return fmt.Sprintf("TIL Trivia %s\n%d/%d\n\n%s",
		t.Format("Jan 2, 2006"), a.Score, entity.QuestionsPerDay, grid.String())
}
