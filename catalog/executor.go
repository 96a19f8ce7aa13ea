package catalog

import (
	"context"

	"github.com/halfsy-shop/halfsy-backend/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Execute runs one plan with skip/limit pagination. The returned total is
// always the count of records matching the plan's filter predicate before
// pagination, also for aggregation plans, so has_more math holds on every
// endpoint.
func Execute(ctx context.Context, st Store, plan Plan, skip, limit int64) (int64, []models.RawProduct, error) {
	if plan.Search != nil {
		return executeSearch(ctx, st, plan, skip, limit)
	}

	total, err := st.Count(ctx, plan.Filter)
	if err != nil {
		return 0, nil, err
	}

	if !plan.NeedsPipeline() {
		page, err := st.Find(ctx, plan.Filter, plan.Sort, skip, limit)
		if err != nil {
			return 0, nil, err
		}
		return total, page, nil
	}

	pipeline := mongo.Pipeline{{{Key: "$match", Value: plan.Filter}}}
	pipeline = append(pipeline, plan.Stages...)
	pipeline = append(pipeline, bson.D{{Key: "$skip", Value: skip}})
	if limit > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$limit", Value: limit}})
	}
	if plan.Project != nil {
		pipeline = append(pipeline, bson.D{{Key: "$project", Value: plan.Project}})
	}

	page, err := st.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, nil, err
	}
	return total, page, nil
}

// executeSearch runs the full-text pipeline. The search stage must be the
// pipeline's entry point, so the total also comes from a $count pass over
// the same search + filter prefix rather than a plain collection count. Any
// error surfaces to the caller, whose job is to retry with the regex
// fallback plan.
func executeSearch(ctx context.Context, st Store, plan Plan, skip, limit int64) (int64, []models.RawProduct, error) {
	prefix := mongo.Pipeline{plan.Search}
	if len(plan.Filter) > 0 {
		prefix = append(prefix, bson.D{{Key: "$match", Value: plan.Filter}})
	}

	countPipeline := append(append(mongo.Pipeline{}, prefix...), bson.D{{Key: "$count", Value: "total"}})
	counts, err := st.Aggregate(ctx, countPipeline)
	if err != nil {
		return 0, nil, err
	}
	var total int64
	if len(counts) > 0 {
		if f, ok := ParseCurrencyAmount(counts[0]["total"]); ok {
			total = int64(f)
		}
	}

	pagePipeline := append(append(mongo.Pipeline{}, prefix...), bson.D{{Key: "$skip", Value: skip}})
	if limit > 0 {
		pagePipeline = append(pagePipeline, bson.D{{Key: "$limit", Value: limit}})
	}
	page, err := st.Aggregate(ctx, pagePipeline)
	if err != nil {
		return 0, nil, err
	}
	return total, page, nil
}
