package main

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// プロンプト名
const (
	PromptNameThesisBlogPost    = "thesis_blog_post"
	PromptNameAlgorithmAnalysis = "algorithm_analysis_post"
)

const thesisBlogPostTemplate = `Write a detailed blog post about my Master's thesis research progress. Here are the details:

**Topic:** %s

**Key Findings/Progress:** %s

**Challenges Encountered:** %s

Please structure the blog post with:
1. An engaging introduction
2. Clear explanation of the research topic
3. Discussion of methodology and approach
4. Key findings and insights
5. Challenges faced and solutions
6. Next steps and future work
7. Conclusion

The tone should be informative but accessible to both technical and non-technical readers. Include relevant technical details but explain them clearly.`

const algorithmAnalysisTemplate = `Write a comprehensive blog post analyzing the following algorithm:

**Algorithm:** %s

**Complexity Analysis:** %s

**Applications:** %s

Please structure the blog post with:
1. Introduction to the algorithm and its importance
2. Clear explanation of how the algorithm works
3. Step-by-step breakdown with examples
4. Time and space complexity analysis
5. Comparison with alternative approaches
6. Real-world applications and use cases
7. Implementation considerations
8. Conclusion

Make sure to explain mathematical concepts clearly and include practical examples. The post should be educational and help readers understand both the theory and practical aspects of the algorithm.`

type catalogPrompt struct {
	prompt mcp.Prompt
	render func(args map[string]string) *mcp.GetPromptResult
}

// promptCatalog はプロセス全体で共有する読み取り専用のプロンプト一覧
var promptCatalog = []catalogPrompt{
	{
		prompt: mcp.NewPrompt(PromptNameThesisBlogPost,
			mcp.WithPromptDescription("Generate a blog post about Master's thesis research progress"),
			mcp.WithArgument("topic",
				mcp.ArgumentDescription("The specific research topic or milestone to write about"),
				mcp.RequiredArgument(),
			),
			mcp.WithArgument("findings",
				mcp.ArgumentDescription("Key findings, insights, or progress made"),
			),
			mcp.WithArgument("challenges",
				mcp.ArgumentDescription("Challenges encountered and how they were addressed"),
			),
		),
		render: thesisBlogPostPrompt,
	},
	{
		prompt: mcp.NewPrompt(PromptNameAlgorithmAnalysis,
			mcp.WithPromptDescription("Generate a blog post about algorithm analysis and complexity"),
			mcp.WithArgument("algorithm",
				mcp.ArgumentDescription("The algorithm being analyzed"),
				mcp.RequiredArgument(),
			),
			mcp.WithArgument("complexity",
				mcp.ArgumentDescription("Time/space complexity analysis"),
			),
			mcp.WithArgument("applications",
				mcp.ArgumentDescription("Real-world applications of the algorithm"),
			),
		),
		render: algorithmAnalysisPrompt,
	},
}

// ListPrompts はプロンプトの一覧を返す
func (d *Dispatcher) ListPrompts() []mcp.Prompt {
	prompts := make([]mcp.Prompt, 0, len(promptCatalog))
	for _, p := range promptCatalog {
		prompts = append(prompts, p.prompt)
	}
	return prompts
}

// GetPrompt は引数を埋め込んだプロンプトを返す。
// 未知の名前は不正なリクエストなので、ツールと違いエラーとして返す
func (d *Dispatcher) GetPrompt(_ context.Context, name string, arguments map[string]string) (*mcp.GetPromptResult, error) {
	for _, p := range promptCatalog {
		if p.prompt.Name == name {
			return p.render(arguments), nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownPrompt, name)
}

func thesisBlogPostPrompt(args map[string]string) *mcp.GetPromptResult {
	topic := args["topic"]
	text := fmt.Sprintf(thesisBlogPostTemplate, topic, args["findings"], args["challenges"])
	return userPrompt("Blog post template for thesis research on: "+topic, text)
}

func algorithmAnalysisPrompt(args map[string]string) *mcp.GetPromptResult {
	algorithm := args["algorithm"]
	text := fmt.Sprintf(algorithmAnalysisTemplate, algorithm, args["complexity"], args["applications"])
	return userPrompt("Blog post template for algorithm analysis: "+algorithm, text)
}

func userPrompt(description, text string) *mcp.GetPromptResult {
	return mcp.NewGetPromptResult(
		description,
		[]mcp.PromptMessage{
			mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(text)),
		},
	)
}
