/*
Package ctfp explores category theory for programmers, using Go generics.

A category consists of objects and arrows. Arrows compose, composition is
associative, and every object has an identity arrow which is a unit under
composition. In this package objects are Go types and arrows are unary Go
functions:

	inc := func(n int) int { return n + 1 }
	double := func(n int) int { return n * 2 }
	h := ctfp.Compose(inc, double) // inc, then double
	h(1)                           // == 4

Id is the identity arrow for any type. Unit maps every type to the terminal
object One, which has exactly one value.

Sub-packages extend this: package maybe and package result provide Kleisli
arrows for partial and fallible functions, package memo memoizes pure
functions, and package laws checks the category laws for concrete arrows.

The material follows "Category Theory for Programmers" by Bartosz Milewski.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package ctfp
