package responder

import (
	"edushelf/internal/entity"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const GreetingText = "Hello! 👋 I'm EduBot, your EDUSHELF library assistant. " +
	"I'm here to help you find the perfect books for your studies. You can ask me about:\n\n" +
	"📚 Available books and subjects\n" +
	"🔍 Book recommendations based on your course\n" +
	"📖 Detailed information about any book\n" +
	"❓ Help with using the library system\n\n" +
	"What would you like to know today?"

const HelpText = "🎯 **How to use EDUSHELF Library:**\n\n" +
	"1. **Browse Books**: Scroll through the available books section\n" +
	"2. **Search**: Use the search bar to find specific books or topics\n" +
	"3. **Categories**: Books are organized by engineering subjects\n" +
	"4. **Access**: Click on any book to view or download\n\n" +
	"💡 **Tips:**\n" +
	"• Ask me about specific subjects for targeted recommendations\n" +
	"• I can explain concepts from any book\n" +
	"• Need study tips? Just ask!\n\n" +
	"What specific help do you need?"

const StudyTipsText = "📚 **Study Tips for Engineering Students:**\n\n" +
	"✅ **Effective Study Strategies:**\n" +
	"• Start with fundamentals - Math and Programming are key\n" +
	"• Practice problems regularly, especially in Mathematics\n" +
	"• For technical subjects, understand concepts before memorizing\n" +
	"• Use Technical English book to improve communication skills\n\n" +
	"📅 **Study Schedule:**\n" +
	"• Mathematics: Daily practice (1-2 hours)\n" +
	"• Programming: Code daily, build projects\n" +
	"• Theory subjects: Regular reading and note-making\n\n" +
	"🎯 Which subject would you like specific study guidance for?"

const FallbackText = "🤔 I'd love to help you with that! I specialize in:\n\n" +
	"📚 **Book Information & Recommendations**\n" +
	"🔍 **Subject-specific Guidance**\n" +
	"📖 **Study Tips & Learning Strategies**\n" +
	"❓ **Library Navigation Help**\n\n" +
	"Try asking me:\n" +
	"• 'Show me mathematics books'\n" +
	"• 'I need help with programming'\n" +
	"• 'Study tips for electronics'\n" +
	"• 'What books do you have?'\n\n" +
	"What would you like to know?"

func renderRecommendations(found []entity.Book) string {
	var sb strings.Builder
	sb.WriteString("📚 I found these relevant books for you:\n\n")

	shown := found
	if len(shown) > maxRecommendations {
		shown = shown[:maxRecommendations]
	}
	for _, b := range shown {
		fmt.Fprintf(&sb, "📖 **%s**\n", b.Title)
		fmt.Fprintf(&sb, "   Subject: %s\n", b.Subject)
		fmt.Fprintf(&sb, "   %s\n\n", b.Description)
	}

	if rest := len(found) - maxRecommendations; rest > 0 {
		fmt.Fprintf(&sb, "💡 I found %d more books. Would you like to see them?", rest)
	}

	return sb.String()
}

func renderCatalog(books []entity.Book) string {
	lines := make([]string, len(books))
	for i, b := range books {
		lines[i] = fmt.Sprintf("• **%s** (%s)", b.Title, b.Subject)
	}

	return "📚 Here are all our available books:\n\n" +
		strings.Join(lines, "\n") +
		"\n\n🔍 You can ask me about any specific subject or book for more details!"
}

func renderSubject(keyword string, books []entity.Book) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "📚 For %s studies, I recommend:\n\n", cases.Title(language.Und).String(keyword))
	for _, b := range books {
		fmt.Fprintf(&sb, "📖 **%s**\n   %s\n\n", b.Title, b.Description)
	}
	return sb.String()
}
