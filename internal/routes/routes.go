package routes

import (
	"watchlog/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App, mediaHandler *handlers.MediaHandler, backfillHandler *handlers.BackfillHandler, snapshotHandler *handlers.SnapshotHandler) {
	// Media routes - query and upsert by media type
	media := app.Group("/q")
	{
		media.Get("/:media", mediaHandler.Query)
		media.Post("/:media", mediaHandler.Create)
		media.Put("/:media", mediaHandler.Replace)
		media.Patch("/:media", mediaHandler.Patch)
		media.Delete("/:media", mediaHandler.Delete)
	}

	// Backfill routes - OMDb catalog reconciliation
	backfill := app.Group("/backfill/omdb")
	{
		backfill.Post("/:media", backfillHandler.Run)
		backfill.Get("/:media/last", backfillHandler.Last)
	}

	// Snapshot routes - CSV copies in object storage
	snapshots := app.Group("/snapshots")
	{
		snapshots.Post("/:media", snapshotHandler.Export)
		snapshots.Post("/:media/restore", snapshotHandler.Restore)
	}
}
