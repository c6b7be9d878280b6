// Package aspect renders AspectJ interception rules merging two companion classes.
//
// Every function is pure: identical inputs always produce byte-identical text.
// Rules are rendered one indentation level deep so they can be placed directly
// in the aspect body produced by Header and Footer. Generated advice excludes
// join points within the aspect itself, so companion construction and
// redirected accesses performed by the aspect never re-trigger a rule.
package aspect
