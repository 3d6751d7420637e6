// Package hclconfig loads optional program settings from an HCL file (or its
// JSON equivalent). Only the mem program has a file form today:
//
//	counter {
//	  iterations   = 5
//	  start        = 100
//	  interval     = "500ms"   # or a number of seconds: 0.5
//	  show_address = true
//	}
//
// Every attribute is optional; absent attributes leave the caller's value
// untouched so command-line flags and defaults can be layered around it.
// Pointing Load at a directory layers all of its files in lexical order.
package hclconfig
