// Package view holds the renderer-independent parts of the two presentation
// modes: screen and world coordinate mapping, colouring, the orbiting camera
// and the user-tunable controls. Drawing itself lives in the main package.
package view
