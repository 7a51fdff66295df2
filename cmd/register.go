package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/initializ/enroll/internal/answers"
	"github.com/initializ/enroll/internal/config"
	"github.com/initializ/enroll/internal/form"
	"github.com/initializ/enroll/internal/logging"
	"github.com/initializ/enroll/internal/submit"
	"github.com/initializ/enroll/internal/tui"
	"github.com/initializ/enroll/internal/tui/steps"
	"github.com/initializ/enroll/internal/wizard"
)

var (
	answersFile      string
	prefillFile      string
	plainMode        bool
	endpointOverride string
)

// isTerminal reports whether stdin is interactive. Swapped in tests.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Fill in and submit the registration form",
	Long: `Fill in and submit the registration form.

By default an interactive wizard runs when stdin is a terminal. Use --plain
for line-by-line prompts, or --answers to submit a prepared YAML file
without any prompts.`,
	Args: cobra.NoArgs,
	RunE: runRegister,
}

func init() {
	registerCmd.Flags().StringVar(&answersFile, "answers", "", "submit the answers in this YAML file without prompting")
	registerCmd.Flags().StringVar(&prefillFile, "prefill", "", "start the wizard with values from this answers file")
	registerCmd.Flags().BoolVar(&plainMode, "plain", false, "use simple line prompts instead of the full-screen wizard")
	registerCmd.Flags().StringVar(&endpointOverride, "endpoint", "", "registration endpoint URL (overrides config)")
}

func runRegister(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if endpointOverride != "" {
		cfg.Endpoint = endpointOverride
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	ctx := context.Background()
	if cmd != nil && cmd.Context() != nil {
		ctx = cmd.Context()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	interactive := answersFile == "" && !plainMode && isTerminal()
	logger, closer, err := newLogger(cfg, !interactive)
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()

	client := submit.NewClient(cfg.Endpoint, cfg.Timeout, logger)
	acc := form.NewValues()

	switch {
	case answersFile != "":
		return runHeadless(ctx, acc, client, logger)
	case plainMode || !interactive:
		if prefillFile != "" {
			if err := applyAnswers(ctx, prefillFile, acc); err != nil {
				return err
			}
		}
		return runPlain(ctx, cfg, acc, client, logger, promptuiPrompter{})
	default:
		if prefillFile != "" {
			if err := applyAnswers(ctx, prefillFile, acc); err != nil {
				return err
			}
		}
		return runTUI(ctx, cfg, acc, client, logger)
	}
}

func applyAnswers(ctx context.Context, path string, acc form.Accessor) error {
	a, err := answers.Load(path)
	if err != nil {
		return err
	}
	if err := a.Apply(ctx, acc); err != nil {
		return fmt.Errorf("applying %s: %w", path, err)
	}
	return nil
}

// runTUI runs the full-screen wizard.
func runTUI(ctx context.Context, cfg *config.Config, acc form.Accessor, client *submit.Client, logger logging.Logger) error {
	flagTheme := themeOverride
	if flagTheme == "" {
		flagTheme = cfg.Theme
	}
	theme := tui.DetectTheme(flagTheme)
	styles := tui.NewStyleSet(theme)

	ctrl := wizard.New(acc,
		wizard.WithSubmitter(client),
		wizard.WithLogger(logger),
	)
	model := tui.NewWizardModel(ctx, theme, ctrl,
		steps.All(styles, cfg.Countries, cfg.SecurityQuestions), appVersion)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("running wizard: %w", err)
	}

	wm, ok := final.(tui.WizardModel)
	if !ok {
		return fmt.Errorf("wizard ended unexpectedly")
	}
	if wm.Err() != nil {
		return wm.Err()
	}
	if !wm.Done() {
		return tui.ErrAborted
	}

	_, _ = fmt.Fprintln(stdout, wizard.MsgSuccess)
	return nil
}
