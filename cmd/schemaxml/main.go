// Command schemaxml demonstrates the schemaxml library against the
// package's own worked "person" example: a flat document with a name, zero
// or more urls, and an optional date of birth.
package main

func main() {
	Execute()
}
