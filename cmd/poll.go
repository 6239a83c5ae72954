package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bnema/petition-tracker/internal/application"
	"github.com/bnema/petition-tracker/internal/domain"
)

func newPollCmd(app *app) *cobra.Command {
	var once bool
	var populate string
	var pages int

	cmd := &cobra.Command{
		Use:   "poll",
		Short: "Record signature counts from the parliament petitions service",
		Long:  "Poll every open petition in the record store, once or on the poll.schedule cron spec until interrupted. --populate first starts tracking the petitions listed upstream for a state.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := app.daemonLogger()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			store, err := app.openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			poller := application.NewPollService(app.newParliamentClient(logger), store, nil, application.PollOptions{
				Concurrency: app.settings.Poll.Concurrency,
				Logger:      logger,
			})

			if cmd.Flags().Changed("populate") {
				state, err := domain.ParsePetitionState(populate)
				if err != nil {
					return err
				}
				result, err := poller.Populate(ctx, application.PopulateCommand{State: state, MaxPages: pages})
				writePopulateResult(cmd.OutOrStdout(), result)
				if err != nil {
					return err
				}
			}

			if once {
				result, err := poller.PollAll(ctx)
				writePollResult(cmd.OutOrStdout(), result)
				return err
			}

			return runSchedule(ctx, app.settings.Poll.Schedule, logger, func(ctx context.Context) {
				if _, err := poller.PollAll(ctx); err != nil && ctx.Err() == nil {
					logger.Error("poll run failed", zap.Error(err))
				}
			})
		},
	}

	cmd.Flags().BoolVar(&once, "once", false, "Poll once and exit")
	cmd.Flags().StringVar(&populate, "populate", "", "Track new petitions listed upstream in this state (open, closed, rejected, all)")
	cmd.Flags().IntVar(&pages, "pages", 0, "Stop populating after this many listing pages (0: all)")

	return cmd
}

// runSchedule runs job straight away and then on schedule until ctx ends.
// Overlapping runs are skipped.
func runSchedule(ctx context.Context, schedule string, logger *zap.Logger, job func(context.Context)) error {
	log := cronLogger{logger: logger.Sugar()}
	scheduler := cron.New(
		cron.WithLogger(log),
		cron.WithChain(cron.Recover(log), cron.SkipIfStillRunning(log)),
	)
	if _, err := scheduler.AddFunc(schedule, func() { job(ctx) }); err != nil {
		return fmt.Errorf("schedule poll %q: %w", schedule, err)
	}

	logger.Info("poll scheduled", zap.String("schedule", schedule))
	job(ctx)
	scheduler.Start()

	<-ctx.Done()
	<-scheduler.Stop().Done()
	logger.Info("poll scheduler stopped")

	return nil
}

type cronLogger struct {
	logger *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Errorw(msg, append(keysAndValues, "error", err)...)
}

func writePollResult(out io.Writer, result application.PollResult) {
	_, _ = fmt.Fprintf(out, "poll %s: recorded %d petitions, %d failed in %s\n",
		result.RunID, len(result.Recorded), len(result.Failed), result.Elapsed.Round(time.Millisecond))
	writeFailures(out, result.Failed)
}

func writePopulateResult(out io.Writer, result application.PopulateResult) {
	_, _ = fmt.Fprintf(out, "populate %s: %d pages, %d listed, %d added, %d already tracked, %d failed\n",
		result.RunID, result.Pages, result.Seen, len(result.Added), result.Skipped, len(result.Failed))
	writeFailures(out, result.Failed)
}

func writeFailures(out io.Writer, failures []application.PollFailure) {
	for _, failure := range failures {
		_, _ = fmt.Fprintf(out, "  petition %s: %v\n", failure.PetitionID, failure.Err)
	}
}
