package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/halfsy-shop/halfsy-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// fakeStore scripts the Store surface for plan and pipeline assertions.
type fakeStore struct {
	countFn   func(filter bson.M) (int64, error)
	findFn    func(filter bson.M, sort bson.D, skip, limit int64) ([]models.RawProduct, error)
	findOneFn func(filter bson.M) (models.RawProduct, error)
	aggFn     func(pipeline mongo.Pipeline) ([]bson.M, error)
}

func (f *fakeStore) Count(_ context.Context, filter bson.M) (int64, error) {
	if f.countFn == nil {
		return 0, nil
	}
	return f.countFn(filter)
}

func (f *fakeStore) Find(_ context.Context, filter bson.M, sort bson.D, skip, limit int64) ([]models.RawProduct, error) {
	if f.findFn == nil {
		return nil, nil
	}
	return f.findFn(filter, sort, skip, limit)
}

func (f *fakeStore) FindOne(_ context.Context, filter bson.M) (models.RawProduct, error) {
	if f.findOneFn == nil {
		return nil, ErrNotFound
	}
	return f.findOneFn(filter)
}

func (f *fakeStore) Aggregate(_ context.Context, pipeline mongo.Pipeline) ([]bson.M, error) {
	if f.aggFn == nil {
		return nil, nil
	}
	return f.aggFn(pipeline)
}

// stageKeys lists the top-level operator of every stage, for shape checks.
func stageKeys(pipeline mongo.Pipeline) []string {
	keys := make([]string, len(pipeline))
	for i, stage := range pipeline {
		keys[i] = stage[0].Key
	}
	return keys
}

func TestExecutePlainPlan(t *testing.T) {
	page := []models.RawProduct{{"product_name": "a"}, {"product_name": "b"}}

	var gotFilter bson.M
	var gotSkip, gotLimit int64
	st := &fakeStore{
		countFn: func(filter bson.M) (int64, error) {
			gotFilter = filter
			return 42, nil
		},
		findFn: func(filter bson.M, sort bson.D, skip, limit int64) ([]models.RawProduct, error) {
			gotSkip, gotLimit = skip, limit
			return page, nil
		},
	}

	plan := BuildListingPlan(models.FilterCriteria{})
	total, got, err := Execute(context.Background(), st, plan, 20, 10)
	require.NoError(t, err)

	// Total is the filtered count before pagination, not the page size.
	assert.Equal(t, int64(42), total)
	assert.Equal(t, page, got)
	assert.Equal(t, plan.Filter, gotFilter)
	assert.Equal(t, int64(20), gotSkip)
	assert.Equal(t, int64(10), gotLimit)
}

func TestExecutePipelinePlan(t *testing.T) {
	var gotPipeline mongo.Pipeline
	st := &fakeStore{
		countFn: func(bson.M) (int64, error) { return 7, nil },
		aggFn: func(pipeline mongo.Pipeline) ([]bson.M, error) {
			gotPipeline = pipeline
			return []bson.M{{"product_name": "x"}}, nil
		},
	}

	plan := BuildDealsPlan(nil, nil)
	total, page, err := Execute(context.Background(), st, plan, 5, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(7), total)
	assert.Len(t, page, 1)

	// $match, computed field, sort, then pagination, then the projection
	// that strips the computed field.
	assert.Equal(t,
		[]string{"$match", "$addFields", "$sort", "$skip", "$limit", "$project"},
		stageKeys(gotPipeline))
}

func TestExecutePipelineZeroLimit(t *testing.T) {
	var gotPipeline mongo.Pipeline
	st := &fakeStore{
		aggFn: func(pipeline mongo.Pipeline) ([]bson.M, error) {
			gotPipeline = pipeline
			return nil, nil
		},
	}

	plan := BuildDealsPlan(nil, nil)
	_, _, err := Execute(context.Background(), st, plan, 0, 0)
	require.NoError(t, err)
	assert.NotContains(t, stageKeys(gotPipeline), "$limit")
}

func TestExecuteSearchPlan(t *testing.T) {
	var pipelines []mongo.Pipeline
	st := &fakeStore{
		aggFn: func(pipeline mongo.Pipeline) ([]bson.M, error) {
			pipelines = append(pipelines, pipeline)
			if len(pipelines) == 1 {
				return []bson.M{{"total": int32(57)}}, nil
			}
			return []bson.M{{"product_name": "hit"}}, nil
		},
	}

	primary, _ := BuildSearchPlans(models.FilterCriteria{Query: "denim"})
	total, page, err := Execute(context.Background(), st, primary, 10, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(57), total)
	assert.Len(t, page, 1)

	require.Len(t, pipelines, 2)
	assert.Equal(t, []string{"$search", "$match", "$count"}, stageKeys(pipelines[0]))
	assert.Equal(t, []string{"$search", "$match", "$skip", "$limit"}, stageKeys(pipelines[1]))
}

func TestExecuteSearchNoMatches(t *testing.T) {
	st := &fakeStore{
		aggFn: func(pipeline mongo.Pipeline) ([]bson.M, error) {
			// $count yields no document at all on an empty result set.
			return nil, nil
		},
	}

	primary, _ := BuildSearchPlans(models.FilterCriteria{Query: "nothing"})
	total, page, err := Execute(context.Background(), st, primary, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
	assert.Empty(t, page)
}

func TestExecuteSearchSurfacesErrors(t *testing.T) {
	searchErr := errors.New("no search index")
	st := &fakeStore{
		aggFn: func(mongo.Pipeline) ([]bson.M, error) { return nil, searchErr },
	}

	primary, _ := BuildSearchPlans(models.FilterCriteria{Query: "denim"})
	_, _, err := Execute(context.Background(), st, primary, 0, 10)
	assert.ErrorIs(t, err, searchErr)
}

func TestExecuteCountError(t *testing.T) {
	countErr := errors.New("count failed")
	st := &fakeStore{
		countFn: func(bson.M) (int64, error) { return 0, countErr },
	}

	_, _, err := Execute(context.Background(), st, BuildListingPlan(models.FilterCriteria{}), 0, 10)
	assert.ErrorIs(t, err, countErr)
}
