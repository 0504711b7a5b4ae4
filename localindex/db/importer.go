package db

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/tobijjah/landsat-archive/archive"
	"github.com/tobijjah/landsat-archive/util"
)

const (
	//BeginIngestJobMessage asks a running import loop to start a job now.
	BeginIngestJobMessage = "beginIngestJob"
	//AbortIngestJobMessage asks a running import job to stop after the current scene.
	AbortIngestJobMessage = "abortIngestJob"
)

//Importer manages the state for an ingest job over a local archive root.
type Importer struct {
	rootDir        string
	options        *archive.Options
	dbConnProvider ConnectionProvider
	statusChan     chan chan string
}

//NewImporter initializes a new importer for the given archive root directory.
func NewImporter(
	rootDir string,
	options *archive.Options,
	dbConnProvider ConnectionProvider) *Importer {
	return &Importer{
		rootDir:        rootDir,
		options:        options,
		dbConnProvider: dbConnProvider,
		statusChan:     make(chan chan string, 10)}
}

//ImportWhile performs the Import() task and waits for a channel.
//Note: this is blocking
//The function will exit when messageChan is closed and any in-progress jobs complete.
//To close quickly, send AbortIngestJobMessage on messageChan before closing it.
func (imp *Importer) ImportWhile(messageChan <-chan string, maxTimeBetweenJobs time.Duration) {
	log.Println("Job loop started with frequency", maxTimeBetweenJobs)

	previousStatus := "\tNone"

	scheduleTimer := time.NewTimer(maxTimeBetweenJobs)
	nextScheduledStartTime := time.Now().Add(maxTimeBetweenJobs)

	var startJob bool
	for {
		startJob = false

		//Wait for a start message.
		//Status is reported cooperatively, so deal with any requests while we wait.
		select {
		case <-scheduleTimer.C:
			log.Println("Maximum time between jobs elapsed.")
			startJob = true
		case msg, ok := <-messageChan:
			if !ok {
				return //The message channel has been closed. Exit.
			}
			switch msg {
			case BeginIngestJobMessage:
				log.Println("User requested job start.")
				startJob = true
			default:
				//ignore this message. We only want ones for "begin".
			}
		case respChan := <-imp.statusChan:
			//The user has sent a request for the current status.
			select {
			case respChan <- fmt.Sprintf("%v\nStatus: Sleeping until %v\nPrevious job:\n%v",
				time.Now().Format("Mon Jan _2 15:04:05 2006"),
				nextScheduledStartTime.Format("Mon Jan _2 15:04:05 2006"),
				previousStatus): //good
			default:
				//Could not send immediately. We'll ignore it.
			}
		}

		if startJob {
			log.Println("Starting job.")
			previousStatus = imp.Import(messageChan)

			scheduleTimer.Stop()
			//Rather than keep track of whether we've received on the timer channel,
			//we'll just drain it in a general way.
		TimerDrainLoop:
			for {
				select {
				case <-scheduleTimer.C: //good, discard
				default:
					break TimerDrainLoop
				}
			}

			scheduleTimer.Reset(maxTimeBetweenJobs)
			nextScheduledStartTime = time.Now().Add(maxTimeBetweenJobs)
		}
	}
}

//GetStatus is a thread safe way to get information about the import operation.
func (imp *Importer) GetStatus() string {
	responseChan := make(chan string, 1) //Must have a buffer. The loop won't wait if it can't send.
	imp.statusChan <- responseChan
	status := <-responseChan
	return status
}

//Import walks the archive root once and indexes every resolvable scene.
func (imp *Importer) Import(messageChan <-chan string) (result string) {
	entries, err := os.ReadDir(imp.rootDir)
	if err != nil {
		result = fmt.Sprintf("Could not read archive root %s: %v", imp.rootDir, err)
		log.Println(result)
		return
	}

	//Database connection is opened right before the ingest, and closed
	//immediately after.
	database, err := imp.dbConnProvider(&util.BasicLogContext{})
	if err != nil {
		result = fmt.Sprintf("Could not open database connection: %v", err)
		log.Println(result)
		return
	}
	defer database.Close()

	var indexed, skipped int
	aborted := false

	for _, entry := range entries {
		if drainAbortMessage(messageChan) {
			aborted = true
			break
		}

		source := filepath.Join(imp.rootDir, entry.Name())
		if err := imp.ingestOne(database, source); err != nil {
			log.Printf("Skipping %s: %v", source, err)
			skipped++
			continue
		}
		indexed++
	}

	result = fmt.Sprintf("\tIndexed: %d\n\tSkipped: %d", indexed, skipped)
	if aborted {
		result += "\n\tAborted before completion."
	}
	log.Println("Job finished.\n" + result)
	return
}

func (imp *Importer) ingestOne(database *sql.DB, source string) error {
	resolved, err := archive.Read(source, imp.options)
	if err != nil {
		return err
	}

	scene, err := IndexedSceneFromArchive(resolved)
	if err != nil {
		return err
	}

	tx, err := database.Begin()
	if err != nil {
		return err
	}

	if err = InsertScene(tx, scene); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

func drainAbortMessage(messageChan <-chan string) bool {
	for {
		select {
		case msg, ok := <-messageChan:
			if !ok {
				return true
			}
			if msg == AbortIngestJobMessage {
				log.Println("Import aborted by request.")
				return true
			}
		default:
			return false
		}
	}
}
