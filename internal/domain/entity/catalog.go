package entity

// Static catalogs served to registration forms. The security question a
// user picks is stored verbatim on the account.

// SecurityQuestionsEN is the English security question catalog.
var SecurityQuestionsEN = []string{
	"What was the house number and street name you lived in as a child?",
	"What were the last four digits of your childhood telephone number?",
	"What primary school did you attend?",
	"In what town or city was your first full time job?",
	"In what town or city did you meet your spouse/partner?",
	"What is the middle name of your oldest child?",
	"What are the last five digits of your driver's licence number?",
	"What is your grandmother's (on your mother's side) maiden name?",
	"What is your spouse or partner's mother's maiden name?",
	"In what town or city did your mother and father meet?",
}

// SecurityQuestionsDE is the German security question catalog.
var SecurityQuestionsDE = []string{
	"Wie war die Hausnummer und der Straßenname, in dem Sie als Kind gelebt haben?",
	"Was waren die letzten vier Ziffern der Telefonnummer Ihrer Kindheit?",
	"Welche Grundschule haben Sie besucht?",
	"In welcher Stadt war Ihr erster Vollzeitjob?",
	"In welcher Stadt haben Sie Ihren Ehepartner/Partner getroffen?",
	"Wie lautet der zweite Vorname Ihres ältesten Kindes?",
	"Was sind die letzten fünf Ziffern Ihrer Führerscheinnummer?",
	"Wie lautet der Mädchenname Ihrer Großmutter (mütterlicherseits)?",
	"Wie lautet der Mädchenname der Mutter Ihres Ehepartners oder Ihrer Partnerin?",
	"In welcher Stadt lernten sich deine Mutter und dein Vater kennen?",
}

// ResearchInterests is the predefined research interest tag catalog.
var ResearchInterests = []string{"VR", "AR", "AV"}
