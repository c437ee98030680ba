// Package audio provides the optional sound layer of the game manager:
// background music and short feedback cues.
//
// Nothing in the catalog depends on this package. When sound is disabled,
// or no player program is installed, NopPlayer keeps every call silent.
//
// # Players
//
// A Player starts playback of one file. ExecPlayer drives an external
// program (ffplay, paplay, afplay or aplay):
//
//	player, err := audio.NewExecPlayer("")
//	if err != nil {
//	    player = audio.NopPlayer{}
//	}
//
// # Background music
//
// Session owns at most one background track. Starting a new track stops
// and releases the previous one first:
//
//	session := audio.NewSession(player, logger)
//	defer session.Close()
//	_ = session.Start(ctx, "Menu 2.wav", 0.5)
//	fmt.Println(session.NowPlaying()) // title and artist from ID3 tags, if any
//
// # Cues
//
// Cues maps UI events to short sound files found in a directory:
//
//	cues, err := audio.LoadCues(ctx, player, ".", 1.0, 700*time.Millisecond, logger)
//	cues.Play(ctx, audio.CueSelect)
//
// Cues also implements app.Notifier, playing the success or error sound
// for command results.
package audio
