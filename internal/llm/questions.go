package llm

import (
	"context"
	"fmt"
	"strings"

	"company-research/internal/models"
)

// GenerateQuestions asks the completer for a research question list covering
// the standard company-profile areas. The prompt instructs the model to
// refuse inputs that are not real companies; that refusal sentence comes
// back as the only line and is surfaced as an error.
func GenerateQuestions(ctx context.Context, completer Completer, company string) ([]string, error) {
	prompt := fmt.Sprintf(models.QuestionsPromptTemplate, company)
	out, err := completer.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var questions []string
	for _, line := range strings.Split(out, "\n") {
		if q := trimListDecoration(line); q != "" {
			questions = append(questions, q)
		}
	}
	if len(questions) == 1 && !strings.HasSuffix(questions[0], "?") {
		return nil, fmt.Errorf("not a company: %s", questions[0])
	}
	return questions, nil
}

// trimListDecoration strips the "1.", "-", "*" prefixes of a numbered or
// bulleted list line.
func trimListDecoration(line string) string {
	s := strings.TrimSpace(line)
	s = strings.TrimLeft(s, "-*")
	s = strings.TrimSpace(s)
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			continue
		}
		if s[i] == '.' || s[i] == ')' {
			s = s[i+1:]
		}
		break
	}
	return strings.TrimSpace(s)
}
