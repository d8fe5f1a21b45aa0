package mockapi

import (
	"fmt"
	"strings"
	"time"

	"github.com/yigit/alumnihub/internal/app/models"
	"github.com/yigit/alumnihub/internal/app/repositories/mockdata"
	"github.com/yigit/alumnihub/internal/pkg/apperrors"
)

// QAMockAPI serves questions and answers from the mock store.
type QAMockAPI struct {
	*resource[models.QAItem]
}

// NewQAMockAPI creates the Q&A mock API.
func NewQAMockAPI(store *mockdata.Store, opts Options) *QAMockAPI {
	return &QAMockAPI{&resource[models.QAItem]{
		store:         store,
		collection:    models.CollectionQA,
		entity:        "question",
		label:         "Question",
		plural:        "Questions",
		latency:       opts.Latency,
		logger:        opts.Logger,
		lifecycle:     models.QALifecycle,
		initialStatus: string(models.QAStatusPending),
		actions: map[models.Action]action{
			models.ActionAnswer:    transitionWith(answer),
			models.ActionPublish:   transitionWith(stampOnce("publishedDate")),
			models.ActionUnpublish: transition(),
			models.ActionReject:    transition(),
			models.ActionArchive:   transition(),
			models.ActionLike:      count("likeCount", 1),
			models.ActionUnlike:    count("likeCount", -1),
			models.ActionView:      count("viewCount", 1),
		},
		counters:     []string{"likeCount", "viewCount"},
		arrays:       []string{"tags"},
		searchFields: []string{"question", "answer"},
		sorter: sorter[models.QAItem]{
			defaultKey:  "createdAt",
			defaultDesc: true,
			keys: map[string]compareFunc[models.QAItem]{
				"createdAt": byTime(func(q models.QAItem) time.Time { return q.CreatedAt }),
				"likeCount": byNumber(func(q models.QAItem) int { return q.LikeCount }),
				"viewCount": byNumber(func(q models.QAItem) int { return q.ViewCount }),
			},
		},
	}}
}

// answer records the answer text and who gave it. The payload carries answer and answeredBy.
func answer(doc mockdata.Document, payload map[string]interface{}, now time.Time) (bool, error) {
	text, _ := payload["answer"].(string)
	if strings.TrimSpace(text) == "" {
		return false, fmt.Errorf("%w: answer is required", apperrors.ErrValidationFailed)
	}
	doc["answer"] = text
	if by, _ := payload["answeredBy"].(string); by != "" {
		doc["answeredBy"] = by
	}
	doc.SetTime("answeredAt", now)
	return true, nil
}
