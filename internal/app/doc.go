// Package app runs the interactive calculator session.
//
// The Menu is a small state machine (main menu, running module, exit) over a
// list of registered modules. Each selection runs exactly one module
// invocation synchronously and returns to the main menu. Closed input or a
// cancelled context ends the session with the farewell message.
//
// Key Components:
//   - Menu: registration, menu rendering and dispatch
//   - Module: the interface every calculator module implements
//   - Env: per-invocation dependencies handed to a module
//   - DefaultModules: arithmetic, percentage, statistics and expression
//
// Example Usage:
//
//	menu := app.NewMenu(app.Options{Prompter: prompter, Math: provider, Logger: log})
//	for _, m := range app.DefaultModules() {
//	    if err := menu.Register(m); err != nil {
//	        return err
//	    }
//	}
//	return menu.Run(ctx)
package app
