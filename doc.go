// Package primer is the Composition Root for the primer course library.
//
// It connects the lesson catalog (Domain Layer) with the topic packages
// that contribute worked examples, exposing a small facade for hosts
// that want to embed the course.
//
// Philosophy:
//
// Primer is a runnable introduction to functions, arguments, return
// values, default parameters (Go style), and module structure. Each topic
// lives in its own package under pkg/, which is itself the lesson on
// module creation and import: any program can import a topic package and
// call its functions directly. The primer binary under cmd/primer is the
// other half of that lesson: a directory whose package is main and which
// defines func main is an entry point that runs; every other package is a
// library that is imported.
//
// Features:
//
//   - **Lesson Catalog**: ordered, glob-addressable registry of worked examples.
//   - **Topic Packages**: funcs, greet, vector, primes, text; each importable on its own.
//   - **Workbooks**: YAML exercise files checked against the catalog, with watch mode.
//   - **Functional Options**: the Go idiom standing in for default parameters.
//
// Usage:
//
//	// Build the course and run one lesson
//	reg, err := primer.New()
//	if err != nil {
//		log.Fatal(err)
//	}
//	err = reg.Run(ctx, "vector/norm", os.Stdout, nil)
package primer
