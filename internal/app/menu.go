package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/GriffinCanCode/calcshell/internal/console"
	"github.com/GriffinCanCode/calcshell/internal/infrastructure/monitoring"
	mathProvider "github.com/GriffinCanCode/calcshell/internal/providers/math"
	"github.com/GriffinCanCode/calcshell/internal/shared/id"
	"github.com/GriffinCanCode/calcshell/internal/shared/types"
	"go.uber.org/zap"
)

// ExitKey ends the session from the main menu
const ExitKey = "0"

// State is the dispatcher state
type State int

const (
	StateMainMenu State = iota
	StateRunningModule
	StateExit
)

func (s State) String() string {
	switch s {
	case StateMainMenu:
		return "main_menu"
	case StateRunningModule:
		return "running_module"
	case StateExit:
		return "exit"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Module is a calculator module selectable from the main menu
type Module interface {
	Definition() types.Module
	Run(ctx context.Context, env *Env) error
}

// Env carries the dependencies of one module invocation
type Env struct {
	Prompter   *console.Prompter
	Theme      *console.Theme
	Math       *mathProvider.Provider
	Logger     *zap.Logger
	Metrics    *monitoring.Metrics
	Invocation id.InvocationID
}

// Options configures a Menu
type Options struct {
	Prompter *console.Prompter
	Math     *mathProvider.Provider
	Logger   *zap.Logger
	Metrics  *monitoring.Metrics
	// Banner lines shown once when the session starts; none when empty
	Banner []string
}

// Menu dispatches user selections to registered modules
type Menu struct {
	modules []Module
	byKey   map[string]Module
	state   State
	session id.SessionID

	prompter *console.Prompter
	math     *mathProvider.Provider
	logger   *zap.Logger
	metrics  *monitoring.Metrics
	banner   []string
}

// NewMenu creates a menu with no modules
func NewMenu(opts Options) *Menu {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	math := opts.Math
	if math == nil {
		math = mathProvider.NewProvider(mathProvider.Options{})
	}

	return &Menu{
		byKey:    make(map[string]Module),
		state:    StateMainMenu,
		session:  id.NewSessionID(),
		prompter: opts.Prompter,
		math:     math,
		logger:   logger.Named("menu"),
		metrics:  opts.Metrics,
		banner:   opts.Banner,
	}
}

// Register appends a module; menu order is registration order
func (m *Menu) Register(mod Module) error {
	def := mod.Definition()
	key := strings.TrimSpace(def.Key)

	switch {
	case key == "":
		return fmt.Errorf("module key cannot be empty")
	case key == ExitKey:
		return fmt.Errorf("module key %q is reserved for exit", ExitKey)
	}
	if _, exists := m.byKey[key]; exists {
		return fmt.Errorf("module key %q already registered", key)
	}

	m.modules = append(m.modules, mod)
	m.byKey[key] = mod
	return nil
}

// Modules returns the registered module definitions in menu order
func (m *Menu) Modules() []types.Module {
	defs := make([]types.Module, 0, len(m.modules))
	for _, mod := range m.modules {
		defs = append(defs, mod.Definition())
	}
	return defs
}

// State returns the current dispatcher state
func (m *Menu) State() State { return m.state }

// Session returns the ID correlating this menu's log lines
func (m *Menu) Session() id.SessionID { return m.session }

// Run drives the session until the user exits, input closes or ctx is done.
// Input is read synchronously, so cancellation is observed between prompts.
func (m *Menu) Run(ctx context.Context) error {
	if m.prompter == nil {
		return fmt.Errorf("menu has no prompter")
	}

	log := m.logger.With(zap.String("session_id", m.session.String()))
	log.Info("Session started", zap.Int("modules", len(m.modules)))

	if len(m.banner) > 0 {
		m.prompter.Println(m.prompter.Theme().Banner(m.banner...))
	}

	var runErr error
	m.state = StateMainMenu
	for m.state != StateExit {
		if ctx.Err() != nil {
			m.state = StateExit
			break
		}

		m.renderMenu()
		choice, err := m.prompter.ReadLine("\n  Select option: ")
		if errors.Is(err, console.ErrLineTooLong) {
			m.metrics.RecordSelection(false)
			log.Debug("Invalid selection", zap.Error(err))
			m.prompter.Error(m.invalidOptionMessage())
			continue
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				runErr = err
			}
			m.state = StateExit
			break
		}

		if choice == ExitKey {
			m.metrics.RecordSelection(true)
			m.state = StateExit
			break
		}

		mod, ok := m.byKey[choice]
		if !ok {
			m.metrics.RecordSelection(false)
			log.Debug("Invalid selection", zap.String("choice", choice))
			m.prompter.Error(m.invalidOptionMessage())
			continue
		}

		m.metrics.RecordSelection(true)
		m.state = StateRunningModule
		m.invoke(ctx, log, mod)
		if m.state == StateRunningModule {
			m.state = StateMainMenu
		}
	}

	m.prompter.Println("\n  Goodbye!")
	m.prompter.Println()

	snap := m.metrics.Snapshot()
	log.Info("Session ended",
		zap.Int64("module_runs", snap.TotalRuns),
		zap.Int64("domain_errors", snap.DomainErrors),
		zap.Int64("inputs_rejected", snap.InputsRejected),
		zap.Int64("invalid_selections", snap.InvalidSelection),
		zap.Duration("uptime", m.metrics.Uptime()),
	)

	if runErr != nil {
		return fmt.Errorf("failed to read selection: %w", runErr)
	}
	return nil
}

func (m *Menu) invoke(ctx context.Context, log *zap.Logger, mod Module) {
	def := mod.Definition()
	invocation := id.NewInvocationID()
	log = log.With(
		zap.String("module", def.Name),
		zap.String("invocation_id", invocation.String()),
	)

	log.Debug("Module started")
	start := time.Now()

	err := mod.Run(ctx, &Env{
		Prompter:   m.prompter,
		Theme:      m.prompter.Theme(),
		Math:       m.math,
		Logger:     log,
		Metrics:    m.metrics,
		Invocation: invocation,
	})

	duration := time.Since(start)
	m.metrics.RecordModuleRun(metricName(def), duration)

	switch {
	case err == nil:
		log.Debug("Module finished", zap.Duration("duration", duration))
	case isTerminal(err):
		log.Debug("Module interrupted", zap.Error(err))
		m.state = StateExit
	default:
		log.Warn("Module failed", zap.Error(err))
		m.prompter.Error(err.Error())
	}
}

func (m *Menu) renderMenu() {
	theme := m.prompter.Theme()

	m.prompter.Println()
	m.prompter.Println("  " + theme.Muted("══════════════ MENU ══════════════"))
	for _, mod := range m.modules {
		def := mod.Definition()
		m.prompter.Printf("  %s %s\n", theme.MenuKey(def.Key), def.Label())
	}
	m.prompter.Printf("  %s Exit\n", theme.MenuKey(ExitKey))
	m.prompter.Println("  " + theme.Muted("══════════════════════════════════"))
}

// invalidOptionMessage names the valid keys, e.g. "Please choose 1-4 or 0."
func (m *Menu) invalidOptionMessage() string {
	switch len(m.modules) {
	case 0:
		return fmt.Sprintf("Invalid option. Please choose %s.", ExitKey)
	case 1:
		return fmt.Sprintf("Invalid option. Please choose %s or %s.", m.modules[0].Definition().Key, ExitKey)
	default:
		first := m.modules[0].Definition().Key
		last := m.modules[len(m.modules)-1].Definition().Key
		return fmt.Sprintf("Invalid option. Please choose %s-%s or %s.", first, last, ExitKey)
	}
}

// isTerminal reports whether err ends the session rather than the invocation
func isTerminal(err error) bool {
	return errors.Is(err, io.EOF) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}

func metricName(def types.Module) string {
	return strings.ToLower(def.Name)
}
