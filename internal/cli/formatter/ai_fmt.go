package formatter

import (
	"strings"

	"github.com/alexanderramin/scenariodialogue/internal/intelligence"
)

// FormatAIStatus renders which enhancement tier would serve the next call.
func FormatAIStatus(st intelligence.Status) string {
	var b strings.Builder
	if st.Available {
		b.WriteString(StyleGreen.Render("● available") + "  via " + Bold(string(st.Method)))
		if st.Model != "" {
			b.WriteString("  " + Dim(st.Model))
		}
		b.WriteString("\n")
		return b.String()
	}
	b.WriteString(StyleDim.Render("● unavailable") + "\n")
	b.WriteString(Dim("Responses stay rule-based. Start Ollama or set ANTHROPIC_API_KEY to enable rewriting.") + "\n")
	return b.String()
}
