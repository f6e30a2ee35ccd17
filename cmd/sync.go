package cmd

import (
	"context"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	globalConfig "github.com/kinesia-app/kinesia/config"
	coreDB "github.com/kinesia-app/kinesia/core/database"
	domainSync "github.com/kinesia-app/kinesia/domains/sync"
	"github.com/kinesia-app/kinesia/infrastructure/cachestore"
	"github.com/kinesia-app/kinesia/infrastructure/notion"
	"github.com/kinesia-app/kinesia/notionbridge"
	"github.com/kinesia-app/kinesia/pkg/utils"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Resync the Notion reference databases and invalidate dependent caches",
	Run:   runSync,
}

func init() {
	rootCmd.AddCommand(syncCmd)
}

func runSync(_ *cobra.Command, _ []string) {
	if err := utils.CreateFolder(globalConfig.PathStorages); err != nil {
		logrus.Fatalf("[Sync] Failed to create storage folder: %v", err)
	}

	db, err := coreDB.NewDatabase()
	if err != nil {
		logrus.Fatalf("[Sync] Failed to open database: %v", err)
	}

	store := cachestore.NewGormStore(db)
	if err := store.InitSchema(context.Background()); err != nil {
		logrus.Fatalf("[Sync] Failed to migrate cache schema: %v", err)
	}

	syncer := notionbridge.NewSyncer(store, notion.NewClient(), globalConfig.DefaultOwnerID)
	status := syncer.HandleSync(context.Background())

	switch status.State {
	case domainSync.StateSuccess:
		logrus.Infof("[Sync] Reference data synced at %s", status.LastSyncedAt)
	case domainSync.StateError:
		logrus.Fatalf("[Sync] Sync failed: %s", status.Error)
	default:
		logrus.Infof("[Sync] Finished in state %s", status.State)
	}
}
