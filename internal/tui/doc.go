// Package tui is the interactive front end of the game manager, built on
// Bubble Tea.
//
// The program loops over a numbered menu of six commands. Digits 1 to 6
// choose a command directly; arrow keys and enter work too. Add and Remove
// open a small form, the other commands run at once. Every result stays on
// screen until a key is pressed, then the menu returns. Choosing 6 prints
// the farewell and ends the program.
//
// Failures never end the loop: invalid prices, unknown names, an empty
// catalog and unreadable files are all shown as results.
//
// Example:
//
//	err := tui.Run(ctx, tui.Options{
//	    Service:          svc,
//	    Cues:             cues,
//	    Music:            session,
//	    PauseAfterAction: true,
//	})
package tui
