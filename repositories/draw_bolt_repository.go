package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Dosada05/tournament-draws/models"
	"github.com/boltdb/bolt"
)

var drawsBucket = []byte("draws")

// Error wraps a bolt failure with what was being attempted.
type Error struct {
	Err         error
	Description string
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Description
	}
	return fmt.Sprintf("%s: %v", e.Description, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

type boltDrawRepository struct {
	db *bolt.DB
}

// NewBoltDrawRepository opens (or creates) the bolt file at path.
func NewBoltDrawRepository(path string) (DrawRepository, func() error, error) {
	db, err := bolt.Open(path, 0644, nil)
	if err != nil {
		return nil, nil, &Error{Err: err, Description: "Couldn't open database"}
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(drawsBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, nil, &Error{Err: err, Description: "Couldn't create draws bucket"}
	}
	return &boltDrawRepository{db: db}, db.Close, nil
}

func (r *boltDrawRepository) write(id string, mustExist bool, draw *models.DrawDefinition) (err error) {
	data, err := json.Marshal(draw)
	if err != nil {
		return &Error{Err: err, Description: "Couldn't marshal draw"}
	}

	tx, err := r.db.Begin(true)
	if err != nil {
		return &Error{Err: err, Description: "Couldn't start transaction"}
	}
	defer func() {
		if err != nil {
			if lErr := tx.Rollback(); lErr != nil {
				err = &Error{Err: lErr, Description: fmt.Sprintf("Couldn't rollback transaction; error causing rollback: %s", err)}
			}
			return
		}
		if lErr := tx.Commit(); lErr != nil {
			err = &Error{Err: lErr, Description: "Couldn't commit transaction"}
		}
	}()

	bucket := tx.Bucket(drawsBucket)
	exists := bucket.Get([]byte(id)) != nil
	switch {
	case mustExist && !exists:
		return drawNotFound(id)
	case !mustExist && exists:
		return ErrDrawIDConflict
	}
	if err = bucket.Put([]byte(id), data); err != nil {
		return &Error{Err: err, Description: "Couldn't write draw"}
	}
	return nil
}

func (r *boltDrawRepository) Create(_ context.Context, draw *models.DrawDefinition) error {
	return r.write(draw.DrawID, false, draw)
}

func (r *boltDrawRepository) Update(_ context.Context, draw *models.DrawDefinition) error {
	return r.write(draw.DrawID, true, draw)
}

func (r *boltDrawRepository) GetByID(_ context.Context, id string) (draw *models.DrawDefinition, err error) {
	tx, err := r.db.Begin(false)
	if err != nil {
		return nil, &Error{Err: err, Description: "Couldn't start transaction"}
	}
	defer tx.Rollback()

	data := tx.Bucket(drawsBucket).Get([]byte(id))
	if data == nil {
		return nil, drawNotFound(id)
	}
	draw = &models.DrawDefinition{}
	if err := json.Unmarshal(data, draw); err != nil {
		return nil, &Error{Err: err, Description: "Couldn't unmarshal draw"}
	}
	return draw, nil
}

func (r *boltDrawRepository) Delete(_ context.Context, id string) error {
	return r.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(drawsBucket)
		if bucket.Get([]byte(id)) == nil {
			return drawNotFound(id)
		}
		if err := bucket.Delete([]byte(id)); err != nil {
			return &Error{Err: err, Description: "Couldn't delete draw"}
		}
		return nil
	})
}

func (r *boltDrawRepository) List(_ context.Context) ([]models.DrawSummary, error) {
	summaries := make([]models.DrawSummary, 0)
	err := r.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(drawsBucket).ForEach(func(_, data []byte) error {
			var summary models.DrawSummary
			if err := json.Unmarshal(data, &summary); err != nil {
				return &Error{Err: err, Description: "Couldn't unmarshal draw"}
			}
			summaries = append(summaries, summary)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sortSummaries(summaries)
	return summaries, nil
}
