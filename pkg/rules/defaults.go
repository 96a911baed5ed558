package rules

// Defaults is the rule table shipped with wordfix.
var Defaults = map[string]string{
	"teh":        "the",
	"hte":        "the",
	"adn":        "and",
	"nad":        "and",
	"taht":       "that",
	"thta":       "that",
	"wiht":       "with",
	"whit":       "with",
	"recieve":    "receive",
	"recieved":   "received",
	"beleive":    "believe",
	"becuase":    "because",
	"becasue":    "because",
	"definately": "definitely",
	"occured":    "occurred",
	"occurence":  "occurrence",
	"seperate":   "separate",
	"untill":     "until",
	"wich":       "which",
	"thier":      "their",
	"freind":     "friend",
	"goverment":  "government",
	"tommorow":   "tomorrow",
	"accross":    "across",
	"acheive":    "achieve",
	"wierd":      "weird",
	"alot":       "a lot",
	"dont":       "don't",
	"doesnt":     "doesn't",
	"didnt":      "didn't",
	"cant":       "can't",
	"wont":       "won't",
	"isnt":       "isn't",
	"wasnt":      "wasn't",
	"im":         "I'm",
	"ive":        "I've",
	"youre":      "you're",
	"i":          "I",
}
