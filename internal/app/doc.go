// Package app connects user commands to the catalog store.
//
// A front end (the Bubble Tea UI or the command line) turns user input
// into a Request, and Service.Execute runs it against the store:
//
//	svc := app.NewService(store.New("games.xml"), cues)
//	res := svc.Execute(app.Request{
//	    Command: app.CommandAdd,
//	    Name:    "Chess",
//	    Genre:   "Strategy",
//	    Price:   "9.99",
//	})
//	fmt.Println(res.Message) // "Game added successfully."
//
// Execute never returns an error. Every failure, including storage
// problems, is folded into the Result's Outcome and Message so the caller
// can report it and carry on. A Notifier, such as the audio cue player,
// sees every Result as well.
package app
