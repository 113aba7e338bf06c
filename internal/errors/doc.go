// Package errors provides structured, actionable error messages for the
// toastify command and its configuration loader.
//
// Every error carries a code (e.g. "T101") that maps to a short message,
// a longer explanation and a category. Builders attach the offending
// config file location, a hint and the underlying cause:
//
//	err := errors.New("T102").
//	    WithLocation("toastify.yaml", 7, 13).
//	    WithSuggestion(`use one of top-left, top-right, top-center, bottom-left, bottom-right, bottom-center`)
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR T102: Invalid toast position
//	//
//	//   toastify.yaml:7:13
//	//
//	//      5 │ container:
//	//      6 │   defaults:
//	//   →  7 │     position: middle
//	//        │             ^
//	//
//	//   Hint: use one of top-left, top-right, ...
//
// Library packages (pkg/...) return plain sentinel errors; this package is
// for the outer surfaces that talk to a human.
package errors
