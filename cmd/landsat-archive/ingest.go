package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"

	"github.com/tobijjah/landsat-archive/archive"
	"github.com/tobijjah/landsat-archive/localindex/db"
	"github.com/tobijjah/landsat-archive/util"

	_ "github.com/lib/pq"
	cli "gopkg.in/urfave/cli.v1"
)

const defaultIngestFrequency = 24 * time.Hour

func newImporterFromEnv() *db.Importer {
	rootDir := util.GetIndexRoot()
	if rootDir == "" {
		log.Fatal("No archive root configured. Set LANDSAT_INDEX_ROOT.")
	}

	return db.NewImporter(rootDir, &archive.Options{
		ExtractTo:       util.GetExtractDir(),
		MetadataPattern: util.GetMetadataPattern(),
	}, getDbConnectionFunc)
}

//ingestOnceAction calls the ingest worker a single time without scheduling.
func ingestOnceAction(*cli.Context) {
	importer := newImporterFromEnv()
	log.Println(importer.Import(nil))
}

//ingestScheduleAction starts the worker process and an http server.
func ingestScheduleAction(*cli.Context) {
	portStr := getPortStr()

	importer := newImporterFromEnv()

	//Create the channel that sends the start/stop messages to the Importer.
	messageChan := make(chan string, 5) //small buffer.

	//Start the sleep/ingest loop.
	go importer.ImportWhile(messageChan, getTimerDuration())

	//Set up an http router
	router := mux.NewRouter()
	router.HandleFunc("/ingest/", func(resp http.ResponseWriter, req *http.Request) {
		handleImportStatus(importer, resp, req)
	})
	router.HandleFunc("/ingest/start", func(resp http.ResponseWriter, req *http.Request) {
		handleForceStartIngest(importer, messageChan, resp, req)
	})
	router.HandleFunc("/ingest/cancel", func(resp http.ResponseWriter, req *http.Request) {
		handleCancel(importer, messageChan, resp, req)
	})

	log.Println("Listening on port", portStr)
	log.Fatal(http.ListenAndServe(portStr, router))
}

//handleImportStatus requests the status from the importer and writes it out.
func handleImportStatus(imp *db.Importer, writer http.ResponseWriter, req *http.Request) {
	fmt.Fprintln(writer, imp.GetStatus())
}

//handleForceStartIngest sends a "begin" message to the importer and returns the new status to the user.
func handleForceStartIngest(imp *db.Importer, messageChan chan<- string, writer http.ResponseWriter, req *http.Request) {
	select {
	case messageChan <- db.BeginIngestJobMessage:
		fmt.Fprintln(writer, "Begin job request submitted.")
	default:
		fmt.Fprintln(writer, "Error submitting request.")
	}
	fmt.Fprintln(writer, imp.GetStatus())
}

//handleCancel sends a "cancel" message to the importer and returns the new status to the user.
func handleCancel(imp *db.Importer, cancelChan chan<- string, writer http.ResponseWriter, req *http.Request) {
	select {
	case cancelChan <- db.AbortIngestJobMessage:
		fmt.Fprintln(writer, "Cancel request submitted.")
	default:
		fmt.Fprintln(writer, "Error submitting cancel request.")
	}
	fmt.Fprintln(writer, imp.GetStatus())
}

func getTimerDuration() time.Duration {
	duration, _ := time.ParseDuration(os.Getenv(util.LANDSAT_INGEST_FREQUENCY))

	if duration < (time.Minute) {
		log.Printf("Specified duration of %v is too small. Setting to default.", duration)
		duration = defaultIngestFrequency
	}

	return duration
}
