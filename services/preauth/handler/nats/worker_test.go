package nats

import (
	"encoding/json"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tecodan/sharetribe/internal/pkg/models"
	"github.com/tecodan/sharetribe/internal/pkg/result"
	"github.com/tecodan/sharetribe/services/preauth/mocks"
)

func setupWorkerTest(t *testing.T) (*Handler, *mocks.MockPreauthUC, *mocks.MockWorkerGW, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockPreauthUC(ctrl)
	mockGW := mocks.NewMockWorkerGW(ctrl)

	h := &Handler{
		preauthUC: mockUC,
		workerGW:  mockGW,
	}
	return h, mockUC, mockGW, ctrl
}

func newJobMessage(t *testing.T, op string) ([]byte, *models.WorkerJob) {
	job := &models.WorkerJob{
		Token:         "tok-1",
		CommunityID:   uuid.New(),
		TransactionID: uuid.New(),
		Op:            op,
	}
	data, err := json.Marshal(job)
	require.NoError(t, err)
	return data, job
}

func TestHandleJobMessage_SuccessStoresOutcome(t *testing.T) {
	h, mockUC, mockGW, ctrl := setupWorkerTest(t)
	defer ctrl.Finish()

	msg, job := newJobMessage(t, models.OpFinalizeCreate)

	mockGW.EXPECT().AcquireJobLock(gomock.Any(), gomock.Any()).Return(true, nil)
	mockUC.EXPECT().ExecuteJob(gomock.Any(), gomock.Any()).
		Return(result.Ok(models.OpOutcome{Transaction: &models.TransactionResponse{
			TransactionID: job.TransactionID,
			State:         models.StatePreauthorized,
		}}))
	mockGW.EXPECT().CompleteProcess(gomock.Any(), "tok-1", gomock.Any()).
		DoAndReturn(func(_ interface{}, _ string, payload []byte) error {
			var outcome jobOutcome
			require.NoError(t, json.Unmarshal(payload, &outcome))
			assert.True(t, outcome.Success)
			assert.Equal(t, models.StatePreauthorized, outcome.Transaction.State)
			return nil
		})
	mockGW.EXPECT().ReleaseJobLock(gomock.Any(), gomock.Any()).Return(nil)

	err := h.handleJobMessage(msg)

	assert.NoError(t, err)
}

func TestHandleJobMessage_DuplicateJobIsDropped(t *testing.T) {
	h, _, mockGW, ctrl := setupWorkerTest(t)
	defer ctrl.Finish()

	msg, _ := newJobMessage(t, models.OpFinalizeCreate)

	// Lock held elsewhere: no execution, no completion, no release
	mockGW.EXPECT().AcquireJobLock(gomock.Any(), gomock.Any()).Return(false, nil)

	err := h.handleJobMessage(msg)

	assert.NoError(t, err)
}

func TestHandleJobMessage_FailureStoresErrorDetails(t *testing.T) {
	h, mockUC, mockGW, ctrl := setupWorkerTest(t)
	defer ctrl.Finish()

	msg, _ := newJobMessage(t, models.OpFinalizeCreate)

	mockGW.EXPECT().AcquireJobLock(gomock.Any(), gomock.Any()).Return(true, nil)
	mockUC.EXPECT().ExecuteJob(gomock.Any(), gomock.Any()).
		Return(result.Err[models.OpOutcome]("failed to reserve booking", map[string]any{
			"reason": "double_booking",
		}))
	mockGW.EXPECT().CompleteProcess(gomock.Any(), "tok-1", gomock.Any()).
		DoAndReturn(func(_ interface{}, _ string, payload []byte) error {
			var outcome jobOutcome
			require.NoError(t, json.Unmarshal(payload, &outcome))
			assert.False(t, outcome.Success)
			assert.Equal(t, "failed to reserve booking", outcome.Error)
			assert.Equal(t, "double_booking", outcome.Details["reason"])
			return nil
		})
	mockGW.EXPECT().ReleaseJobLock(gomock.Any(), gomock.Any()).Return(nil)

	err := h.handleJobMessage(msg)

	assert.NoError(t, err)
}

func TestHandleJobMessage_StateGuardPanicRecordedAsFailure(t *testing.T) {
	h, mockUC, mockGW, ctrl := setupWorkerTest(t)
	defer ctrl.Finish()

	msg, job := newJobMessage(t, models.OpFinalizeCreate)

	mockGW.EXPECT().AcquireJobLock(gomock.Any(), gomock.Any()).Return(true, nil)
	mockUC.EXPECT().ExecuteJob(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, _ *models.WorkerJob) result.Result[models.OpOutcome] {
			panic(&models.IllegalStateError{
				Op:            models.OpFinalizeCreate,
				TransactionID: job.TransactionID,
				Actual:        models.StateConfirmed,
			})
		})
	mockGW.EXPECT().CompleteProcess(gomock.Any(), "tok-1", gomock.Any()).
		DoAndReturn(func(_ interface{}, _ string, payload []byte) error {
			var outcome jobOutcome
			require.NoError(t, json.Unmarshal(payload, &outcome))
			assert.False(t, outcome.Success)
			assert.Contains(t, outcome.Error, "not allowed")
			return nil
		})
	mockGW.EXPECT().ReleaseJobLock(gomock.Any(), gomock.Any()).Return(nil)

	err := h.handleJobMessage(msg)

	assert.NoError(t, err)
}

func TestHandleJobMessage_MalformedPayloadErrors(t *testing.T) {
	h, _, _, ctrl := setupWorkerTest(t)
	defer ctrl.Finish()

	err := h.handleJobMessage([]byte("{not json"))

	assert.Error(t, err)
}
