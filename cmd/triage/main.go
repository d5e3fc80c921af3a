// Command triage classifies support messages from the command line.
//
// Messages are taken from the arguments, or one per line from stdin when no
// arguments are given:
//
//	triage "I can't stop worrying about exams"
//	triage --json --fail-on-crisis < messages.txt
package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"neurosync/internal/logging"
	"neurosync/internal/models"
	"neurosync/internal/triage"
)

// exitCrisis is the exit status when --fail-on-crisis trips.
const exitCrisis = 2

var errCrisis = errors.New("crisis-tier message found")

type options struct {
	json         bool
	keywords     bool
	failOnCrisis bool
	logLevel     string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if errors.Is(err, errCrisis) {
			os.Exit(exitCrisis)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "triage [message...]",
		Short: "Classify support messages by severity",
		Long: `Classifies each message as low, medium, high or crisis using the same
keyword rules as the support chat. Reads one message per line from stdin
when no arguments are given; blank lines classify as low.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.json, "json", false, "print one JSON object per message")
	cmd.Flags().BoolVar(&opts.keywords, "keywords", false, "print the keyword patterns for each tier and exit")
	cmd.Flags().BoolVar(&opts.failOnCrisis, "fail-on-crisis", false, "exit with status 2 if any message is crisis-tier")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	return cmd
}

func run(cmd *cobra.Command, args []string, opts *options) error {
	logger, err := logging.New(opts.logLevel, false)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	if opts.keywords {
		printKeywords(cmd.OutOrStdout(), triage.Default())
		return nil
	}

	messages := args
	if len(messages) == 0 {
		messages, err = readLines(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
	}

	out := cmd.OutOrStdout()
	enc := json.NewEncoder(out)
	crisis := 0

	for _, msg := range messages {
		result := triage.Classify(msg)
		logger.Debug("classified message", zap.String("tier", result.Tier.String()), zap.Int("length", len(msg)))

		if result.Urgent() {
			crisis++
		}

		if opts.json {
			resp := models.NewClassifyResponse(result)
			line := struct {
				Message string `json:"message"`
				models.ClassifyResponse
			}{Message: msg, ClassifyResponse: resp}
			if err := enc.Encode(line); err != nil {
				return err
			}
			continue
		}
		fmt.Fprintf(out, "%s\t%s\n", result.Tier, msg)
	}

	logger.Info("classification complete", zap.Int("messages", len(messages)), zap.Int("crisis", crisis))

	if opts.failOnCrisis && crisis > 0 {
		return fmt.Errorf("%w: %d of %d", errCrisis, crisis, len(messages))
	}
	return nil
}

// readLines returns every line of r, blank ones included, without the line
// terminator. Lines may be any length.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			lines = append(lines, strings.TrimRight(line, "\r\n"))
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// printKeywords writes each tier's patterns, most urgent first.
func printKeywords(out io.Writer, classifier *triage.Classifier) {
	tiers := triage.Tiers()
	for i := len(tiers) - 1; i >= 0; i-- {
		patterns := classifier.Keywords(tiers[i])
		if len(patterns) == 0 {
			continue
		}
		fmt.Fprintf(out, "%s\t%s\n", tiers[i], strings.Join(patterns, ", "))
	}
}
