package views

import "math/rand"

var motivationalQuotes = []string{
	"The secret of getting ahead is getting started. - Mark Twain",
	"The best way to predict the future is to create it. - Peter Drucker",
	"Don't watch the clock; do what it does. Keep going. - Sam Levenson",
	"The only limit to our realization of tomorrow is our doubts of today. - Franklin D. Roosevelt",
	"Well done is better than well said. - Benjamin Franklin",
	"It does not matter how slowly you go as long as you do not stop. - Confucius",
}

// RandomQuote picks the motivational line shown on the dashboard.
func RandomQuote() string {
	return motivationalQuotes[rand.Intn(len(motivationalQuotes))]
}
