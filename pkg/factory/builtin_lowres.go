//go:build lowres

package factory

var heavyCreators []Creator
