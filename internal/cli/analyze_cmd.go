package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/tianji/internal/cli/formatter"
	"github.com/alexanderramin/tianji/internal/contract"
	"github.com/alexanderramin/tianji/internal/domain"
	"github.com/alexanderramin/tianji/internal/intelligence"
)

func newAnalyzeCmd(app *App) *cobra.Command {
	var topic, question string
	var save bool

	cmd := &cobra.Command{
		Use:   "analyze NAME",
		Short: "Generate a reading for a stored profile",
		Long: "Generate a reading for a stored profile: one of the fixed topics\n" +
			"(--topic) or a free question (--question). Readings fall back to the\n" +
			"offline interpretation when no model is configured.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if question == "" {
				if topic == "" {
					topic = intelligence.Topics()[0]
				} else if !validTopic(topic) {
					return fmt.Errorf("unknown topic %q, pick one of: %s", topic, strings.Join(intelligence.Topics(), "、"))
				}
			}

			p, err := app.Profiles.GetByID(ctx, args[0])
			if err != nil {
				return err
			}
			chartResp, err := app.Charts.Compute(ctx, contract.NewChartRequest(contract.BirthFromProfile(p)))
			if err != nil {
				return err
			}

			now := time.Now()
			history, err := app.Profiles.History(ctx, p.ID)
			if err != nil {
				return err
			}
			req := intelligence.AnalysisRequest{
				Context: readingContext(p, chartResp, now),
				History: history,
				First:   len(history) == 0,
			}

			stopSpinner := formatter.StartSpinner("天机推演中...")
			var reading *intelligence.Reading
			if question != "" {
				reading, err = app.Analysis.QuestionReading(ctx, req, question)
			} else {
				reading, err = app.Analysis.TopicReading(ctx, req, topic)
			}
			stopSpinner()
			if err != nil {
				return err
			}

			header := topic
			if question != "" {
				header = question
			}
			fmt.Printf("%s\n", formatter.Header(header))
			fmt.Printf("%s\n", formatter.CleanMarkdown(reading.Text))
			fmt.Printf("%s\n", formatter.SourceNote(contract.ReadingView{
				Text: reading.Text, Model: reading.Model, Source: reading.Source,
			}))

			if reading.Source == "refused" {
				return nil
			}

			entryTopic := topic
			if question != "" {
				entryTopic = intelligence.QuestionTopic
			}
			history = append(history, intelligence.HistoryEntry{Topic: entryTopic, Response: reading.Text})
			if err := app.Profiles.SaveHistory(ctx, p.ID, history); err != nil {
				return err
			}

			if save {
				r := &domain.Reading{
					ProfileID: p.ID,
					Kind:      domain.ReadingAnalysis,
					Topic:     entryTopic,
					Question:  question,
					Content:   reading.Text,
					Model:     reading.Model,
				}
				if question != "" {
					r.Kind = domain.ReadingQuestion
				}
				if err := app.Readings.Record(ctx, r); err != nil {
					return err
				}
				fmt.Printf("Saved reading %s\n", r.ID)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&topic, "topic", "", "Reading topic (default 整体命格; see --help for the list)")
	cmd.Flags().StringVar(&question, "question", "", "Free question instead of a fixed topic")
	cmd.Flags().BoolVar(&save, "save", false, "Store the reading in the profile's history")

	return cmd
}

func validTopic(topic string) bool {
	for _, t := range intelligence.Topics() {
		if t == topic {
			return true
		}
	}
	return false
}
