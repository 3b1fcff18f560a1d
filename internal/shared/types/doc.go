// Package types provides shared data structures for the calculator.
//
// Core Types:
//   - Module: menu metadata for a calculator module
//
// Example Usage:
//
//	def := types.Module{
//	    Key:         "1",
//	    Name:        "Arithmetic",
//	    Description: "A+B, A-B, A*B, A/B, A%B",
//	}
package types
