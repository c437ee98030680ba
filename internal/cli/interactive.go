package cli

import (
	"fmt"

	"github.com/handiism/game-manager/internal/app"
	"github.com/handiism/game-manager/internal/audio"
	ioutils "github.com/handiism/game-manager/internal/io"
	"github.com/handiism/game-manager/internal/logging"
	"github.com/handiism/game-manager/internal/tui"
	"github.com/spf13/cobra"
)

// runInteractive starts the music, loads the cues and runs the menu until
// the user picks Exit.
func (c *cli) runInteractive(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	player := c.player()

	session := audio.NewSession(player, c.logger)
	defer session.Close()

	cues, err := audio.LoadCues(ctx, player, c.settings.Audio.CuesDir,
		c.settings.Audio.CueVolume, c.settings.CueHold(), c.logger)
	if err != nil {
		return err
	}

	if music := c.settings.MusicPath(); music != "" {
		if ok, _ := ioutils.Exists(music); ok {
			_ = session.Start(ctx, music, c.settings.Audio.MusicVolume)
		}
	}

	svc := c.service(app.Notifier(cues))
	if err := svc.Init(); err != nil {
		// The menu reports storage problems per command, so keep going.
		fmt.Fprintf(c.stderr, "Warning: %v\n", err)
	}

	logger := logging.FromContext(ctx)
	logger.Info().Str("catalog", c.store.Path()).Msg("interactive session started")
	return tui.Run(ctx, tui.Options{
		Service:          svc,
		Cues:             cues,
		Music:            session,
		PauseAfterAction: c.settings.UI.PauseAfterAction,
	})
}

// player picks the external player, or a silent one when audio is off or
// no player program is installed.
func (c *cli) player() audio.Player {
	if !c.settings.Audio.Enabled {
		return audio.NopPlayer{}
	}

	p, err := audio.NewExecPlayer(c.settings.Audio.Command)
	if err != nil {
		c.logger.Info().Err(err).Msg("audio disabled")
		return audio.NopPlayer{}
	}
	c.logger.Debug().Str("player", p.Command()).Msg("audio player selected")
	return p
}
