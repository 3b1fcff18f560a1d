// Command calcshell is an interactive console calculator.
//
// It offers arithmetic on two numbers, percentage computations, descriptive
// statistics over an entered dataset and evaluation of restricted arithmetic
// expressions. Prompts and results go to stdout; logs go to stderr.
//
// Usage:
//
//	calcshell [--config file] [--log-level level] [--dev] [--no-color]
//	calcshell version
//
// Configuration precedence is defaults, then the config file (.toml, .yaml or
// .yml), then CALC_* environment variables, then flags.
package main
