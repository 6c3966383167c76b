// Package sortable provides wrapper types for primitive types that implement
// the Sortable interface, and adapters that turn any Sortable type into the
// orderings and three-way comparisons used by the sorting and search packages.
//
// # Overview
//
// The Sortable interface extends [github.com/amp-labs/amp-algorithms/compare.Comparable]
// with a LessThan method, providing both equality and ordering. [Int], [Byte] and
// [String] are ready-made implementations.
//
// # Usage
//
//	people := []Person{{"Ann", 41}, {"Bo", 27}}
//	_, err := sorting.InsertionFunc(people, sortable.Ascending[Person]())
//
//	idx := search.BinaryIterativeFunc(sorted, target, sortable.Compare[Person])
//
// # Creating Custom Sortable Types
//
//	type Person struct {
//	    Name string
//	    Age  int
//	}
//
//	func (p Person) Equals(other Person) bool { return p.Age == other.Age && p.Name == other.Name }
//
//	func (p Person) LessThan(other Person) bool {
//	    if p.Age != other.Age {
//	        return p.Age < other.Age
//	    }
//	    return p.Name < other.Name
//	}
//
// LessThan must be a strict weak ordering consistent with Equals, otherwise the
// derived orderings are not strict and sorted output is unspecified.
package sortable
