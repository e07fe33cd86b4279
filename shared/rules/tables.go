package rules

import "github.com/aref-vc/youtube-content-analyzer/internal/models"

var powerWords = []string{
	"free", "new", "proven", "easy", "guaranteed", "secret", "exclusive",
	"limited", "breakthrough", "revolutionary", "transform", "discover",
	"unlock", "master", "essential", "powerful", "ultimate", "best",
}

var ctaPhrases = []string{
	"subscribe", "like", "comment", "share", "follow",
	"click", "download", "join", "sign up", "check out",
}

// topicStopWords filters topic extraction across titles and descriptions.
var topicStopWords = []string{
	"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for",
	"of", "with", "by", "from", "as", "is", "was", "are", "were", "be",
	"have", "has", "had", "do", "does", "did", "will", "would", "should",
	"could", "may", "might", "can", "this", "that", "these", "those", "i",
	"you", "he", "she", "it", "we", "they", "what", "which", "who", "when",
	"where", "why", "how", "all", "each", "every", "both", "few", "more",
	"most", "other", "some", "such", "only", "own", "same", "so", "than",
	"too", "very", "just", "my", "your", "his", "her", "its", "our", "their",
}

// commonStopWords is the shorter list used when mining top-performer titles.
var commonStopWords = []string{
	"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for",
	"of", "with", "by", "from", "as", "is", "was", "are", "were", "be",
}

var emotionLexicons = []EmotionLexicon{
	{"excitement", []string{"amazing", "incredible", "unbelievable", "mind-blowing", "insane", "crazy", "epic"}},
	{"fear", []string{"scary", "terrifying", "dangerous", "warning", "alert", "risk", "threat"}},
	{"anger", []string{"angry", "furious", "outraged", "disgusting", "hate", "worst"}},
	{"surprise", []string{"shocking", "unexpected", "suddenly", "plot twist", "never expected"}},
	{"curiosity", []string{"secret", "hidden", "unknown", "mystery", "revealed", "discover"}},
	{"urgency", []string{"now", "today", "immediately", "quick", "fast", "limited", "urgent"}},
}

// insightWords are the words called out in title performance insights.
var insightWords = []string{
	"secret", "revealed", "truth", "nobody", "everyone", "mistake", "wrong", "simple", "easy", "proven",
}

// gapPatterns are the formats checked for under-use when suggesting content gaps.
var gapPatterns = []models.PatternName{
	models.PatternQuestion,
	models.PatternNumberList,
	models.PatternTutorial,
	models.PatternReview,
	models.PatternComparison,
	models.PatternEmotional,
}

var titleFormulas = []models.TitleFormula{
	{Template: "[Number] [Thing] That [Outcome]", Example: "5 Habits That Changed My Life"},
	{Template: "Why [Subject] [Verb] [Object]", Example: "Why Successful People Wake Up Early"},
	{Template: "How [Subject] [Achievement] in [Timeframe]", Example: "How I Learned Spanish in 30 Days"},
	{Template: "The [Adjective] [Noun] [Qualifier]", Example: "The Hidden Cost of Success"},
	{Template: "[Doing This] for [Timeframe] [Result]", Example: "Reading for 30 Minutes Daily Changed Everything"},
	{Template: "I [Action] and [Result]", Example: "I Quit Social Media and This Happened"},
	{Template: "[Number] [Mistakes] [Target Audience] Make", Example: "7 Mistakes Beginners Make"},
	{Template: "Stop [Action] Start [Action]", Example: "Stop Scrolling Start Creating"},
	{Template: "The Truth About [Topic]", Example: "The Truth About Passive Income"},
	{Template: "[Celebrity/Brand] [Action] [Surprising Element]", Example: "Apple Engineer Reveals Secret Features"},
}
