package draft

import (
	"fmt"

	"herald/internal/infra/textgen"
)

// Task names, also used as metric labels.
const (
	TaskArticle  = "article"
	TaskHeadline = "headline"
	TaskExcerpt  = "excerpt"
	TaskBreaking = "breaking"
	TaskSummary  = "summary"
	TaskOpinion  = "opinion"
	TaskSource   = "source"
)

// Tasks lists every task the CLI accepts.
func Tasks() []string {
	return []string{TaskArticle, TaskHeadline, TaskExcerpt, TaskBreaking, TaskSummary, TaskOpinion, TaskSource}
}

const (
	// bodyExcerptRunes is how much of an article body is embedded in headline and excerpt prompts.
	bodyExcerptRunes = 500
	// sourceTextRunes bounds extracted page text sent for summarization.
	sourceTextRunes = 10000

	journalistRole = `You are a professional journalist writing for a prestigious newspaper called "The Herald". ` +
		`Write in a formal, objective, and engaging news style. Focus on facts, include relevant quotes, and maintain journalistic integrity.`
	headlineRole = "You are a news editor creating compelling, accurate headlines for newspaper articles. " +
		"Headlines should be concise, informative, and follow AP style guidelines."
	excerptRole = "You are a news editor creating article excerpts. " +
		"Create a concise, engaging 2-3 sentence summary that captures the essence of the article and entices readers."
	breakingRole = "You are a news editor creating breaking news alerts. " +
		"Write concise, urgent, single-sentence breaking news updates that capture the most critical information."
	summaryRoleFmt = "You are a news editor creating article summaries. " +
		"Create a %s summary that captures the key facts and main points."
	opinionRole = "You are an opinion columnist for a major newspaper. " +
		"Write persuasive, well-reasoned opinion pieces that present a clear viewpoint while acknowledging counterarguments."
)

func articlePrompt(topic, category string) textgen.Prompt {
	return textgen.Prompt{
		Task:   TaskArticle,
		System: journalistRole,
		User: fmt.Sprintf("Write a news article about: %s. Category: %s. "+
			"Include a compelling headline, a detailed article body (at least 500 words), "+
			"and make it suitable for publication in a major newspaper.", topic, category),
		Temperature: 0.7,
		MaxTokens:   1500,
	}
}

func headlinePrompt(body string) textgen.Prompt {
	return textgen.Prompt{
		Task:        TaskHeadline,
		System:      headlineRole,
		User:        "Create a compelling newspaper headline for this article: " + truncateRunes(body, bodyExcerptRunes) + "...",
		Temperature: 0.7,
		MaxTokens:   100,
	}
}

func excerptPrompt(body string) textgen.Prompt {
	return textgen.Prompt{
		Task:        TaskExcerpt,
		System:      excerptRole,
		User:        "Create an excerpt for this article: " + truncateRunes(body, bodyExcerptRunes) + "...",
		Temperature: 0.7,
		MaxTokens:   150,
	}
}

func breakingPrompt(about string) textgen.Prompt {
	return textgen.Prompt{
		Task:        TaskBreaking,
		System:      breakingRole,
		User:        "Create a breaking news alert about: " + about,
		Temperature: 0.7,
		MaxTokens:   100,
	}
}

func summaryPrompt(task, body string, length SummaryLength) textgen.Prompt {
	return textgen.Prompt{
		Task:        task,
		System:      fmt.Sprintf(summaryRoleFmt, length.guide()),
		User:        "Summarize this article: " + body,
		Temperature: 0.5,
		MaxTokens:   length.maxTokens(),
	}
}

func opinionPrompt(topic, stance string) textgen.Prompt {
	return textgen.Prompt{
		Task:   TaskOpinion,
		System: opinionRole,
		User: fmt.Sprintf("Write an opinion piece about %s. Stance: %s. "+
			"Include compelling arguments, relevant examples, and a strong conclusion.", topic, stance),
		Temperature: 0.8,
		MaxTokens:   1500,
	}
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
