package cmd

import (
	"context"
	"fmt"
	"strings"

	catalogapp "layerit/application/catalog"
	sessionapp "layerit/application/session"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newQuizCmd(opts *rootOptions) *cobra.Command {
	var answers []string

	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Take the skin type quiz",
		Long: `Answer five questions to determine your skin type. The result is saved
and shown with a recommended routine.`,
		Example: `  layerit quiz
  layerit quiz --answers oily,oily,combination,oily,normal`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withCore(cmd.Context(), func(c *core) error {
				questions := c.catalog.Questions()
				if len(answers) > 0 && len(answers) != len(questions) {
					return fmt.Errorf("--answers needs %d values, got %d", len(questions), len(answers))
				}
				pick := askQuestion
				if len(answers) > 0 {
					pick = func(_ context.Context, q catalogapp.QuestionResponse) (string, error) {
						return answers[q.Index], nil
					}
				}
				return runQuiz(cmd, c.session, questions, pick)
			})
		},
	}

	cmd.Flags().StringSliceVar(&answers, "answers", nil, "answer values in question order, skipping the prompts")
	return cmd
}

type answerPicker func(ctx context.Context, q catalogapp.QuestionResponse) (string, error)

func runQuiz(cmd *cobra.Command, svc *sessionapp.ApplicationService, questions []catalogapp.QuestionResponse, pick answerPicker) error {
	ctx := cmd.Context()
	if _, err := svc.Navigate(ctx, sessionapp.NavigateRequest{View: "quiz"}); err != nil {
		return err
	}

	for _, q := range questions {
		value, err := pick(ctx, q)
		if err != nil {
			return err
		}
		resp, err := svc.AnswerQuiz(ctx, sessionapp.AnswerRequest{Value: value})
		if err != nil {
			return err
		}
		if resp.Done {
			return printSkinType(cmd.OutOrStdout(), resp.Result)
		}
	}
	return fmt.Errorf("quiz ended without a result")
}

func askQuestion(_ context.Context, q catalogapp.QuestionResponse) (string, error) {
	options := make([]huh.Option[string], len(q.Options))
	for i, o := range q.Options {
		options[i] = huh.NewOption(strings.TrimSpace(o.Emoji+" "+o.Text), o.Value)
	}

	var value string
	err := huh.NewSelect[string]().
		Title(fmt.Sprintf("%d. %s", q.Index+1, q.Question)).
		Options(options...).
		Value(&value).
		Run()
	return value, err
}
