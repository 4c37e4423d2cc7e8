// Package render draws game frames and reads player keys.
//
// Two frontends share the same game.Renderer and game.KeySource contracts:
// PlainRenderer/PlainKeys print the board as text lines on a raw terminal,
// ScreenRenderer/ScreenKeys draw a coloured full-screen board through tcell.
package render
