package mobile

import (
	"github.com/rs/zerolog/log"

	"xiangqi/internal/logging"
	"xiangqi/internal/server/game"
	httpserver "xiangqi/internal/server/http"
)

// StartServer starts the local HTTP server.
// webDir: physical path to the extracted web assets
// port: port to listen on, e.g. "2888"
func StartServer(webDir string, port string) {
	logging.Setup("info", "console")

	games := game.NewManager(1, 0)
	srv := httpserver.NewServer(games, webDir)

	// Run in background so it doesn't block the Android UI thread
	go func() {
		if err := srv.ListenAndServe("127.0.0.1:" + port); err != nil {
			log.Error().Err(err).Msg("Server Error")
		}
	}()
}
