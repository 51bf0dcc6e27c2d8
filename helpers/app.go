package helpers

import (
	"social-bridge/config"

	"github.com/pocketbase/pocketbase"
)

func CreateApp(cfg *config.Config) *pocketbase.PocketBase {
	app := pocketbase.NewWithConfig(pocketbase.Config{
		HideStartBanner: false,
		DefaultDev:      !cfg.IsProd(),
	})

	return app
}
