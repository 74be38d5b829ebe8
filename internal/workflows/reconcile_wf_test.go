package workflows_test

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.temporal.io/sdk/testsuite"

	"github.com/phygrid/engine/internal/domain"
	"github.com/phygrid/engine/internal/ledger"
	"github.com/phygrid/engine/internal/logger"
	"github.com/phygrid/engine/internal/mocks"
	"github.com/phygrid/engine/internal/store/schema"
	"github.com/phygrid/engine/internal/workflows"
)

// ReconcileWorkflowTestSuite is the test suite for reconciliation workflows
type ReconcileWorkflowTestSuite struct {
	suite.Suite
	testsuite.WorkflowTestSuite

	env        *testsuite.TestWorkflowEnvironment
	ctrl       *gomock.Controller
	executor   *mocks.MockExecutor
	reconciler workflows.Reconciler
}

// SetupTest is called before each test
func (s *ReconcileWorkflowTestSuite) SetupTest() {
	_ = logger.Initialize(logger.Config{
		Debug: true,
	})

	s.env = s.NewTestWorkflowEnvironment()
	s.ctrl = gomock.NewController(s.T())
	s.executor = mocks.NewMockExecutor(s.ctrl)
	s.reconciler = workflows.NewReconciler(s.executor)
}

// TearDownTest is called after each test
func (s *ReconcileWorkflowTestSuite) TearDownTest() {
	s.env.AssertExpectations(s.T())
	s.ctrl.Finish()
}

// TestReconcileWorkflowTestSuite runs the test suite
func TestReconcileWorkflowTestSuite(t *testing.T) {
	suite.Run(t, new(ReconcileWorkflowTestSuite))
}

func (s *ReconcileWorkflowTestSuite) TestReconcileMint_Success() {
	recordID := uuid.New()
	ledgerID := uuid.New()
	job := workflows.MintJob{
		RecordType: domain.RecordTypeBuilding,
		RecordID:   recordID,
		Owner:      "alice",
		RequestID:  ledger.MintCauseID(recordID),
	}
	state := &workflows.OwnershipState{
		OwnershipRecordID: ledgerID,
		TokenID:           "42",
		ContractAddress:   "0xcontract",
		CurrentOwner:      "alice",
		Minted:            true,
		Appended:          true,
	}

	s.env.OnActivity(s.executor.ApplyOwnershipChange, mock.Anything, ledger.ApplyInput{
		RecordType: domain.RecordTypeBuilding,
		RecordID:   recordID,
		NewOwner:   "alice",
		CauseID:    ledger.MintCauseID(recordID),
	}).Return(state, nil)
	s.env.OnActivity(s.executor.SubmitChainMint, mock.Anything, state, job.RequestID).Return("0xtxhash", nil)
	s.env.OnActivity(s.executor.MarkReconciled, mock.Anything, ledgerID, ledger.MintCauseID(recordID), "0xtxhash").Return(nil)

	s.env.ExecuteWorkflow(s.reconciler.ReconcileMint, job)

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())
}

func (s *ReconcileWorkflowTestSuite) TestReconcileMint_ChainFailureLeavesEntryPending() {
	recordID := uuid.New()
	job := workflows.MintJob{
		RecordType: domain.RecordTypeBuilding,
		RecordID:   recordID,
		Owner:      "alice",
		RequestID:  ledger.MintCauseID(recordID),
	}
	state := &workflows.OwnershipState{
		OwnershipRecordID: uuid.New(),
		Minted:            true,
		Appended:          true,
	}

	s.env.OnActivity(s.executor.ApplyOwnershipChange, mock.Anything, mock.Anything).Return(state, nil)
	s.env.OnActivity(s.executor.SubmitChainMint, mock.Anything, state, job.RequestID).
		Return("", errors.New("signer unreachable"))

	s.env.ExecuteWorkflow(s.reconciler.ReconcileMint, job)

	s.True(s.env.IsWorkflowCompleted())
	s.Error(s.env.GetWorkflowError())
}

func (s *ReconcileWorkflowTestSuite) TestReconcileTransfer_GiftSuccess() {
	recordID := uuid.New()
	transferID := uuid.New()
	ledgerID := uuid.New()
	job := workflows.TransferJob{
		RecordType:   domain.RecordTypeBuilding,
		RecordID:     recordID,
		TransferType: schema.TransferTypeGift,
		NewOwner:     "bob",
		CauseID:      ledger.TransferCauseID(transferID),
		RequestID:    ledger.TransferCauseID(transferID),
	}
	state := &workflows.OwnershipState{
		OwnershipRecordID: ledgerID,
		PriorOwner:        "alice",
		CurrentOwner:      "bob",
		Appended:          false, // claim already applied it
	}

	s.env.OnActivity(s.executor.ApplyOwnershipChange, mock.Anything, ledger.ApplyInput{
		RecordType:   domain.RecordTypeBuilding,
		RecordID:     recordID,
		TransferType: schema.TransferTypeGift,
		NewOwner:     "bob",
		CauseID:      job.CauseID,
	}).Return(state, nil)
	s.env.OnActivity(s.executor.SubmitChainTransfer, mock.Anything, state, job.RequestID).Return("0xtxhash", nil)
	s.env.OnActivity(s.executor.MarkReconciled, mock.Anything, ledgerID, job.CauseID, "0xtxhash").Return(nil)

	s.env.ExecuteWorkflow(s.reconciler.ReconcileTransfer, job)

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())
}

func (s *ReconcileWorkflowTestSuite) TestReconcileTransfer_MintFallback() {
	recordID := uuid.New()
	transferID := uuid.New()
	ledgerID := uuid.New()
	job := workflows.TransferJob{
		RecordType:   domain.RecordTypeBuilding,
		RecordID:     recordID,
		TransferType: schema.TransferTypeGift,
		NewOwner:     "bob",
		CauseID:      ledger.TransferCauseID(transferID),
		RequestID:    ledger.TransferCauseID(transferID),
	}
	// The record had never been minted; the ownership change took the mint
	// path and needs a chain mint, not a transfer
	state := &workflows.OwnershipState{
		OwnershipRecordID: ledgerID,
		CurrentOwner:      "bob",
		Minted:            true,
		Appended:          true,
	}

	s.env.OnActivity(s.executor.ApplyOwnershipChange, mock.Anything, mock.Anything).Return(state, nil)
	s.env.OnActivity(s.executor.SubmitChainMint, mock.Anything, state, job.RequestID).Return("0xtxhash", nil)
	s.env.OnActivity(s.executor.MarkReconciled, mock.Anything, ledgerID, job.CauseID, "0xtxhash").Return(nil)

	s.env.ExecuteWorkflow(s.reconciler.ReconcileTransfer, job)

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())
}

func (s *ReconcileWorkflowTestSuite) TestReconcileTransfer_BidCompletesAfterReconciliation() {
	recordID := uuid.New()
	bidID := uuid.New()
	ledgerID := uuid.New()
	job := workflows.TransferJob{
		RecordType:   domain.RecordTypeBuilding,
		RecordID:     recordID,
		TransferType: schema.TransferTypeBid,
		NewOwner:     "bob",
		CauseID:      ledger.BidCauseID(bidID),
		BidID:        &bidID,
		RequestID:    ledger.BidCauseID(bidID),
	}
	state := &workflows.OwnershipState{
		OwnershipRecordID: ledgerID,
		PriorOwner:        "alice",
		CurrentOwner:      "bob",
		Appended:          true,
	}

	s.env.OnActivity(s.executor.ApplyOwnershipChange, mock.Anything, mock.Anything).Return(state, nil)
	s.env.OnActivity(s.executor.SubmitChainTransfer, mock.Anything, state, job.RequestID).Return("0xtxhash", nil)
	s.env.OnActivity(s.executor.MarkReconciled, mock.Anything, ledgerID, job.CauseID, "0xtxhash").Return(nil)
	s.env.OnActivity(s.executor.CompleteBid, mock.Anything, bidID).Return(nil)

	s.env.ExecuteWorkflow(s.reconciler.ReconcileTransfer, job)

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())
}
