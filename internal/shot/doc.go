// Package shot frames screenshots: it places a decoded image on a white
// rounded card with an optional window title bar and a drop shadow, over a
// two-stop diagonal gradient, and exports the result as PNG.
package shot
