// Package watch regenerates the timesheet whenever the input CSV changes.
package watch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sporadisk/timesheet/client/csvfile"
	"github.com/sporadisk/timesheet/timeentry"
)

type Subscriber struct {
	ctx      context.Context
	filePath string
	reader   *csvfile.Reader
	lastRead time.Time
	mu       sync.Mutex
	receiver timeentry.Receiver
}

// NewSubscriber watches filePath until ctx is done. reader supplies the CSV
// dialect; its Path and Stream are ignored.
func NewSubscriber(ctx context.Context, filePath string, reader *csvfile.Reader) (*Subscriber, error) {
	if filePath == "" || filePath == csvfile.StdStream {
		return nil, fmt.Errorf("watching requires a named input file")
	}

	if reader == nil {
		reader = &csvfile.Reader{}
	}

	return &Subscriber{ctx: ctx, filePath: filePath, reader: reader}, nil
}

// Subscribe delivers the current file contents right away, then again after
// every write. It blocks until the subscriber's context is done.
func (s *Subscriber) Subscribe(receiver timeentry.Receiver) error {
	s.receiver = receiver
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("fsnotify.NewWatcher: %w", err)
	}
	defer watcher.Close()

	err = s.deliver(s.filePath)
	if err != nil {
		log.Printf("deliver: %s", err.Error())
	}

	go s.watchResponder(watcher)

	err = watcher.Add(s.filePath)
	if err != nil {
		return fmt.Errorf("watcher.Add: %w", err)
	}

	<-s.ctx.Done()
	return nil
}

func (s *Subscriber) watchResponder(watcher *fsnotify.Watcher) {

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				log.Println("watcher.Events is not okay.")
				return
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				err := s.reactToFileWrite(event.Name)
				if err != nil {
					// keep watching: the next save may fix it
					log.Printf("reactToFileWrite: %s", err.Error())
				}
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				log.Println("watcher.Errors is not okay.")
				return
			}
			log.Println("watcher.Errors: ", err)
		}
	}
}

func (s *Subscriber) reactToFileWrite(filepath string) error {
	s.mu.Lock()
	timeElapsed := time.Since(s.lastRead)
	if timeElapsed < time.Second { // react at most once per second
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	return s.deliver(filepath)
}

// deliver hands one complete read of the file to the receiver. Calls are
// serialized, so every aggregation pass runs on its own.
func (s *Subscriber) deliver(filepath string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastRead = time.Now()

	b, err := readLoop(filepath)
	if err != nil {
		return fmt.Errorf("readLoop: %w", err)
	}

	entries, err := s.reader.ReadFrom(bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("reader.ReadFrom: %w", err)
	}

	err = s.receiver.Receive(entries)
	if err != nil {
		return fmt.Errorf("error from time entry receiver: %w", err)
	}

	return nil
}

// readLoop tries to read the file a lot
func readLoop(filepath string) ([]byte, error) {
	for i := 0; i < 100; i++ {
		b, err := readOnce(filepath)
		if err != nil {
			return nil, err
		}

		if len(b) == 0 {
			// sometimes we get an empty file, probably because the file is being written to
			time.Sleep(time.Millisecond * 100)
			continue
		}

		return b, nil
	}

	return nil, fmt.Errorf("readLoop: too many retries")
}

func readOnce(filepath string) ([]byte, error) {
	f, err := os.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("os.Open: %w", err)
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("io.ReadAll: %w", err)
	}

	return b, nil
}
