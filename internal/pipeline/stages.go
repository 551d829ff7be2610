package pipeline

import (
	"context"
	"fmt"

	"github.com/JonMunkholm/inspections/internal/etl"
	"github.com/JonMunkholm/inspections/internal/extract"
	"github.com/JonMunkholm/inspections/internal/logging"
)

// Stage names, in execution order. StageSplit runs before the transaction
// opens and writes nothing.
const (
	StageSplit       = "split"
	StageReset       = "reset"
	StageReferences  = "references"
	StageRestaurants = "restaurants"
	StageContacts    = "restaurant_contacts"
	StageInspections = "inspections"
	StageViolations  = "violations"
)

// StageError reports the stage a run failed in.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s stage: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// stage transforms and persists one slice of the export and returns the
// number of rows written.
type stage struct {
	name string
	run  func(ctx context.Context, tx Tx, in extract.Tables) (int64, error)
}

// stages must run in this order: every stage reads ids written by the ones
// before it.
var stages = []stage{
	{StageReset, resetTables},
	{StageReferences, loadReferences},
	{StageRestaurants, loadRestaurants},
	{StageContacts, loadContacts},
	{StageInspections, loadInspections},
	{StageViolations, loadViolations},
}

func resetTables(ctx context.Context, tx Tx, _ extract.Tables) (int64, error) {
	return 0, tx.Reset(ctx)
}

func loadReferences(ctx context.Context, tx Tx, in extract.Tables) (int64, error) {
	types, err := tx.CopyRestaurantTypes(ctx, etl.TransformRestaurantTypes(in.RestaurantTypes))
	if err != nil {
		return 0, err
	}
	grades, err := tx.CopyGrades(ctx, etl.TransformGrades(in.Grades))
	if err != nil {
		return 0, err
	}
	inspectionTypes, err := tx.CopyInspectionTypes(ctx, etl.TransformInspectionTypes(in.InspectionTypes))
	if err != nil {
		return 0, err
	}
	return types + grades + inspectionTypes, nil
}

func loadRestaurants(ctx context.Context, tx Tx, in extract.Tables) (int64, error) {
	types, err := tx.ListRestaurantTypes(ctx)
	if err != nil {
		return 0, err
	}
	typeIdx, err := etl.IndexRestaurantTypes(types)
	if err != nil {
		return 0, err
	}
	logIndex(ctx, typeIdx)

	restaurants, err := etl.TransformRestaurants(in.Restaurants, typeIdx)
	if err != nil {
		return 0, err
	}
	return tx.CopyRestaurants(ctx, restaurants)
}

func loadContacts(ctx context.Context, tx Tx, in extract.Tables) (int64, error) {
	restaurantIdx, err := restaurantIndex(ctx, tx)
	if err != nil {
		return 0, err
	}

	contacts, err := etl.TransformRestaurantContacts(in.Contacts, restaurantIdx)
	if err != nil {
		return 0, err
	}
	return tx.CopyRestaurantContacts(ctx, contacts)
}

func loadInspections(ctx context.Context, tx Tx, in extract.Tables) (int64, error) {
	restaurantIdx, err := restaurantIndex(ctx, tx)
	if err != nil {
		return 0, err
	}

	grades, err := tx.ListGrades(ctx)
	if err != nil {
		return 0, err
	}
	gradeIdx, err := etl.IndexGrades(grades)
	if err != nil {
		return 0, err
	}
	logIndex(ctx, gradeIdx)

	inspectionTypes, err := tx.ListInspectionTypes(ctx)
	if err != nil {
		return 0, err
	}
	typeIdx, err := etl.IndexInspectionTypes(inspectionTypes)
	if err != nil {
		return 0, err
	}
	logIndex(ctx, typeIdx)

	inspections, err := etl.TransformInspections(in.Inspections, restaurantIdx, gradeIdx, typeIdx)
	if err != nil {
		return 0, err
	}
	return tx.CopyInspections(ctx, inspections)
}

func loadViolations(ctx context.Context, tx Tx, in extract.Tables) (int64, error) {
	snapshot, err := tx.InspectionSnapshots(ctx)
	if err != nil {
		return 0, err
	}
	logging.FromContext(ctx).Debug("inspection snapshot loaded", "inspections", len(snapshot))

	violations, err := etl.TransformViolations(in.Violations, snapshot)
	if err != nil {
		return 0, err
	}
	return tx.CopyViolations(ctx, violations)
}

func restaurantIndex(ctx context.Context, tx Tx) (*etl.Index, error) {
	restaurants, err := tx.ListRestaurants(ctx)
	if err != nil {
		return nil, err
	}
	idx, err := etl.IndexRestaurants(restaurants)
	if err != nil {
		return nil, err
	}
	logIndex(ctx, idx)
	return idx, nil
}

// logIndex records the size of a lookup index before a stage uses it.
func logIndex(ctx context.Context, idx *etl.Index) {
	logging.FromContext(ctx).Debug("index built", "kind", idx.Kind(), "keys", idx.Len())
}
