package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/linskybing/recruit-go/internal/domain/assignment"
	"github.com/linskybing/recruit-go/internal/domain/document"
	"github.com/linskybing/recruit-go/internal/domain/status"
	"github.com/linskybing/recruit-go/internal/events"
	"github.com/linskybing/recruit-go/internal/repository"
	"gorm.io/gorm"
)

type VerifyInput struct {
	DocumentID   uint
	AssignmentID uint
	Decision     document.VerificationStatus
	Reason       string
	By           uint
}

type ReuploadInput struct {
	DocumentID   uint
	AssignmentID uint
	File         document.FileInfo
	By           uint
}

type ReplaceInput struct {
	AssignmentID   uint
	DocumentTypeID uint
	File           document.FileInfo
	By             uint
}

type DocumentService struct {
	Repos     *repository.Repos
	Publisher events.Publisher
}

func NewDocumentService(repos *repository.Repos, publisher events.Publisher) *DocumentService {
	return &DocumentService{
		Repos:     repos,
		Publisher: publisher,
	}
}

// Verify records a verify/reject decision for one document of an assignment
// and recomputes the assignment's document sub status.
func (s *DocumentService) Verify(ctx context.Context, in VerifyInput) (*document.Verification, error) {
	if in.Decision != document.VerificationVerified && in.Decision != document.VerificationRejected {
		return nil, badRequest("decision must be %q or %q, got %q",
			document.VerificationVerified, document.VerificationRejected, in.Decision)
	}

	var (
		out document.Verification
		buf events.Buffer
	)
	err := s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		buf.Reset()
		a, d, err := loadOwnedDocument(tx, in.AssignmentID, in.DocumentID)
		if err != nil {
			return err
		}
		required, err := requiredTypes(tx, a.ProjectID)
		if err != nil {
			return err
		}
		wasComplete, err := allVerified(tx, a.ID, required)
		if err != nil {
			return err
		}

		v, err := findOrCreateVerification(tx, a.ID, d.ID)
		if err != nil {
			return err
		}
		now := nowFunc()
		prev := v.Status
		v.Status = in.Decision
		v.ResubmissionRequested = false
		d.Status = in.Decision
		if in.Decision == document.VerificationVerified {
			v.RejectionReason = ""
			v.VerifiedBy = optionalID(in.By)
			v.VerifiedAt = &now
			d.VerifiedAt = &now
			d.VerifiedBy = optionalID(in.By)
			d.RejectedAt = nil
			d.RejectedBy = nil
			d.RejectionNote = ""
		} else {
			v.RejectionReason = in.Reason
			d.RejectedAt = &now
			d.RejectedBy = optionalID(in.By)
			d.RejectionNote = in.Reason
		}
		if err := tx.Document.SaveVerification(&v); err != nil {
			return err
		}
		if err := tx.Document.SaveDocument(&d); err != nil {
			return err
		}

		action := document.ActionVerified
		if in.Decision == document.VerificationRejected {
			action = document.ActionRejected
		}
		if err := appendVerificationHistory(tx, v, action, prev, in.Reason, in.By); err != nil {
			return err
		}

		sub, changed, err := applyDocumentAggregate(tx, a, len(required), in.By, "Document "+string(action))
		if err != nil {
			return err
		}

		payload := documentPayload(a, d, v)
		if in.Decision == document.VerificationVerified {
			buf.Add(events.DocumentVerified, payload)
		} else {
			payload["reason"] = in.Reason
			buf.Add(events.DocumentRejected, payload)
		}
		if changed && sub == status.SubRejectedDocuments {
			buf.Add(events.CandidateDocumentsRejected, map[string]interface{}{
				"assignment_id": a.ID,
				"candidate_id":  a.CandidateID,
				"project_id":    a.ProjectID,
			})
		}

		nowComplete, err := allVerified(tx, a.ID, required)
		if err != nil {
			return err
		}
		if nowComplete && !wasComplete {
			recruiterID, err := owningRecruiter(tx, a)
			if err != nil {
				return err
			}
			buf.Add(events.AllDocumentsVerified, map[string]interface{}{
				"assignment_id": a.ID,
				"candidate_id":  a.CandidateID,
				"project_id":    a.ProjectID,
				"recruiter_id":  recruiterID,
			})
		}
		out = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	events.Dispatch(ctx, s.Publisher, buf.Events())
	return &out, nil
}

// RequestResubmission flags a document for re-upload and sends the assignment
// back to pending documents without re-running the aggregate rule.
func (s *DocumentService) RequestResubmission(ctx context.Context, documentID, assignmentID uint, reason string, by uint) (*document.Verification, error) {
	if reason == "" {
		return nil, badRequest("a reason is required to request resubmission")
	}

	var (
		out document.Verification
		buf events.Buffer
	)
	err := s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		buf.Reset()
		a, d, err := loadOwnedDocument(tx, assignmentID, documentID)
		if err != nil {
			return err
		}
		v, err := tx.Document.GetVerification(a.ID, d.ID)
		if err != nil {
			return lookup(err, fmt.Sprintf("verification of document %d for assignment", d.ID), a.ID)
		}

		prev := v.Status
		v.Status = document.VerificationResubmissionRequired
		v.ResubmissionRequested = true
		v.ResubmissionReason = reason
		if err := tx.Document.SaveVerification(&v); err != nil {
			return err
		}
		d.Status = document.VerificationResubmissionRequired
		if err := tx.Document.SaveDocument(&d); err != nil {
			return err
		}
		if err := appendVerificationHistory(tx, v, document.ActionResubmissionRequested, prev, reason, by); err != nil {
			return err
		}
		if _, err := TransitionTx(tx, TransitionInput{
			AssignmentID: a.ID,
			SubStatus:    status.SubPendingDocuments,
			ChangedBy:    by,
			Reason:       "Document resubmission requested",
			Notes:        reason,
		}); err != nil {
			return err
		}

		payload := documentPayload(a, d, v)
		payload["reason"] = reason
		buf.Add(events.DocumentResubmissionRequested, payload)
		out = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	events.Dispatch(ctx, s.Publisher, buf.Events())
	return &out, nil
}

// Reupload replaces a document's content in place after a resubmission
// request and puts it back into review.
func (s *DocumentService) Reupload(ctx context.Context, in ReuploadInput) (*document.Verification, error) {
	if in.File.FileURL == "" {
		return nil, badRequest("file is required")
	}

	var (
		out document.Verification
		buf events.Buffer
	)
	err := s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		buf.Reset()
		a, d, err := loadOwnedDocument(tx, in.AssignmentID, in.DocumentID)
		if err != nil {
			return err
		}
		v, err := tx.Document.GetVerification(a.ID, d.ID)
		if err != nil {
			return lookup(err, fmt.Sprintf("verification of document %d for assignment", d.ID), a.ID)
		}
		required, err := requiredTypes(tx, a.ProjectID)
		if err != nil {
			return err
		}

		applyFile(&d, in.File)
		d.Status = document.VerificationResubmitted
		d.VerifiedAt, d.VerifiedBy = nil, nil
		d.RejectedAt, d.RejectedBy = nil, nil
		d.RejectionNote = ""
		if err := tx.Document.SaveDocument(&d); err != nil {
			return err
		}

		prev := v.Status
		v.Status = document.VerificationResubmitted
		v.ResubmissionRequested = false
		v.RejectionReason = ""
		v.VerifiedAt, v.VerifiedBy = nil, nil
		if err := tx.Document.SaveVerification(&v); err != nil {
			return err
		}
		if err := appendVerificationHistory(tx, v, document.ActionResubmitted, prev, "Document re-uploaded", in.By); err != nil {
			return err
		}
		if _, _, err := applyDocumentAggregate(tx, a, len(required), in.By, "Document resubmitted"); err != nil {
			return err
		}

		buf.Add(events.DocumentResubmitted, documentPayload(a, d, v))
		out = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	events.Dispatch(ctx, s.Publisher, buf.Events())
	return &out, nil
}

// Replace uploads a new document of a type, soft deleting whatever the
// candidate had on file for it. The first upload of a type goes through the
// same path with nothing to supersede.
func (s *DocumentService) Replace(ctx context.Context, in ReplaceInput) (*document.Verification, error) {
	if in.File.FileURL == "" {
		return nil, badRequest("file is required")
	}

	var (
		out document.Verification
		buf events.Buffer
	)
	err := s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		buf.Reset()
		a, err := tx.Assignment.GetByID(in.AssignmentID)
		if err != nil {
			return lookup(err, "assignment", in.AssignmentID)
		}
		docType, err := tx.Document.GetDocumentType(in.DocumentTypeID)
		if err != nil {
			return lookup(err, "document type", in.DocumentTypeID)
		}
		required, err := requiredTypes(tx, a.ProjectID)
		if err != nil {
			return err
		}

		old, err := tx.Document.ListLiveDocumentsByType(a.CandidateID, docType.ID)
		if err != nil {
			return err
		}
		now := nowFunc()
		replaced := make([]uint, 0, len(old))
		var others []uint
		seen := map[uint]bool{a.ID: true}
		for _, od := range old {
			if err := tx.Document.SoftDeleteDocument(od.ID, now); err != nil {
				return err
			}
			rows, err := tx.Document.SoftDeleteVerificationsByDocument(od.ID, now)
			if err != nil {
				return err
			}
			for _, row := range rows {
				note := fmt.Sprintf("Replaced by new %s upload", docType.Name)
				if err := appendVerificationHistory(tx, row, document.ActionReplaced, row.Status, note, in.By); err != nil {
					return err
				}
				if !seen[row.AssignmentID] {
					seen[row.AssignmentID] = true
					others = append(others, row.AssignmentID)
				}
			}
			replaced = append(replaced, od.ID)
		}

		d := document.Document{
			CandidateID:    a.CandidateID,
			DocumentTypeID: docType.ID,
			Status:         document.VerificationPending,
		}
		applyFile(&d, in.File)
		if err := tx.Document.CreateDocument(&d); err != nil {
			return err
		}
		v := document.Verification{
			AssignmentID: a.ID,
			DocumentID:   d.ID,
			Status:       document.VerificationPending,
		}
		if err := tx.Document.CreateVerification(&v); err != nil {
			return err
		}
		action, note := document.ActionUploaded, fmt.Sprintf("Uploaded %s", docType.Name)
		if len(replaced) > 0 {
			action = document.ActionReplaced
			note = fmt.Sprintf("Uploaded %s replacing document(s) %v", docType.Name, replaced)
		}
		if err := appendVerificationHistory(tx, v, action, "", note, in.By); err != nil {
			return err
		}
		if _, _, err := applyDocumentAggregate(tx, a, len(required), in.By, note); err != nil {
			return err
		}
		// Other assignments of the candidate lost a verification row too.
		for _, id := range others {
			if err := recomputeDocumentAggregate(tx, id, in.By, fmt.Sprintf("%s replaced", docType.Name)); err != nil {
				return err
			}
		}

		if len(replaced) > 0 {
			payload := documentPayload(a, d, v)
			payload["replaced_document_ids"] = replaced
			buf.Add(events.DocumentReplaced, payload)
		}
		v.Document = &d
		out = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	events.Dispatch(ctx, s.Publisher, buf.Events())
	return &out, nil
}

// Attach opens a pending verification for an existing document. A live
// verification for the same pair is a conflict.
func (s *DocumentService) Attach(ctx context.Context, assignmentID, documentID, by uint) (*document.Verification, error) {
	var out document.Verification
	err := s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		a, d, err := loadOwnedDocument(tx, assignmentID, documentID)
		if err != nil {
			return err
		}
		required, err := requiredTypes(tx, a.ProjectID)
		if err != nil {
			return err
		}
		if _, err := tx.Document.GetVerification(a.ID, d.ID); err == nil {
			return conflict("document %d already has a verification record for assignment %d", d.ID, a.ID)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		v := document.Verification{AssignmentID: a.ID, DocumentID: d.ID, Status: document.VerificationPending}
		if err := tx.Document.CreateVerification(&v); err != nil {
			return err
		}
		if err := appendVerificationHistory(tx, v, document.ActionUploaded, "", "Document attached for verification", by); err != nil {
			return err
		}
		if _, _, err := applyDocumentAggregate(tx, a, len(required), by, "Document attached"); err != nil {
			return err
		}
		out = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CompleteVerification closes the document stage once every required type is
// verified.
func (s *DocumentService) CompleteVerification(ctx context.Context, assignmentID, by uint) (*assignment.Assignment, error) {
	var out assignment.Assignment
	err := s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		a, err := tx.Assignment.GetByID(assignmentID)
		if err != nil {
			return lookup(err, "assignment", assignmentID)
		}
		required, err := requiredTypes(tx, a.ProjectID)
		if err != nil {
			return err
		}
		verified, err := tx.Document.VerifiedTypeIDs(a.ID)
		if err != nil {
			return err
		}
		if n := countCovered(required, verified); n < len(required) {
			return badRequest("only %d of %d required documents are verified", n, len(required))
		}
		moved, err := TransitionTx(tx, TransitionInput{
			AssignmentID: a.ID,
			SubStatus:    status.SubDocumentsVerified,
			ChangedBy:    by,
			Reason:       "Document verification completed",
		})
		if err != nil {
			return err
		}
		out = moved
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Summary reports the counts behind the aggregate sub status.
func (s *DocumentService) Summary(ctx context.Context, assignmentID uint) (*document.Summary, error) {
	repos := s.Repos.WithContext(ctx)
	a, err := repos.Assignment.GetByID(assignmentID)
	if err != nil {
		return nil, lookup(err, "assignment", assignmentID)
	}
	required, err := requiredTypes(repos, a.ProjectID)
	if err != nil {
		return nil, err
	}
	rows, err := repos.Document.ListVerifications(a.ID)
	if err != nil {
		return nil, err
	}
	complete, err := allVerified(repos, a.ID, required)
	if err != nil {
		return nil, err
	}
	counts := document.Tally(len(required), rows)
	return &document.Summary{
		AssignmentID:  a.ID,
		Counts:        counts,
		SubStatus:     document.AggregateSubStatus(counts).String(),
		AllVerified:   complete,
		Verifications: rows,
	}, nil
}

func (s *DocumentService) History(ctx context.Context, documentID uint) ([]document.VerificationHistory, error) {
	return s.Repos.WithContext(ctx).Document.ListHistory(documentID)
}

// applyDocumentAggregate recomputes the document sub status and transitions
// only when it differs from the current one.
func applyDocumentAggregate(tx *repository.Repos, a assignment.Assignment, required int, by uint, reason string) (status.Name, bool, error) {
	rows, err := tx.Document.ListVerifications(a.ID)
	if err != nil {
		return "", false, err
	}
	target := document.AggregateSubStatus(document.Tally(required, rows))
	if a.SubStatus != nil && a.SubStatus.Name == target {
		return target, false, nil
	}
	if _, err := TransitionTx(tx, TransitionInput{
		AssignmentID: a.ID,
		SubStatus:    target,
		ChangedBy:    by,
		Reason:       reason,
	}); err != nil {
		return "", false, err
	}
	return target, true, nil
}

func recomputeDocumentAggregate(tx *repository.Repos, assignmentID, by uint, reason string) error {
	a, err := tx.Assignment.GetByID(assignmentID)
	if err != nil {
		return lookup(err, "assignment", assignmentID)
	}
	required, err := tx.Document.RequiredTypeIDs(a.ProjectID)
	if err != nil {
		return err
	}
	if len(required) == 0 {
		return nil
	}
	_, _, err = applyDocumentAggregate(tx, a, len(required), by, reason)
	return err
}

func loadOwnedDocument(tx *repository.Repos, assignmentID, documentID uint) (assignment.Assignment, document.Document, error) {
	a, err := tx.Assignment.GetByID(assignmentID)
	if err != nil {
		return a, document.Document{}, lookup(err, "assignment", assignmentID)
	}
	d, err := tx.Document.GetDocument(documentID)
	if err != nil {
		return a, d, lookup(err, "document", documentID)
	}
	if d.CandidateID != a.CandidateID {
		return a, d, badRequest("document %d does not belong to candidate %d", d.ID, a.CandidateID)
	}
	return a, d, nil
}

// owningRecruiter prefers the candidate's active recruiter over the id
// stamped on the assignment.
func owningRecruiter(tx *repository.Repos, a assignment.Assignment) (*uint, error) {
	ra, err := tx.Staffing.ActiveRecruiter(a.CandidateID)
	if err == nil {
		return &ra.RecruiterID, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return a.RecruiterID, nil
	}
	return nil, err
}

func requiredTypes(tx *repository.Repos, projectID uint) ([]uint, error) {
	ids, err := tx.Document.RequiredTypeIDs(projectID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, notFound("project %d has no document requirements", projectID)
	}
	return ids, nil
}

func allVerified(tx *repository.Repos, assignmentID uint, required []uint) (bool, error) {
	verified, err := tx.Document.VerifiedTypeIDs(assignmentID)
	if err != nil {
		return false, err
	}
	return document.AllRequiredVerified(required, verified), nil
}

func countCovered(required, verified []uint) int {
	have := make(map[uint]bool, len(verified))
	for _, id := range verified {
		have[id] = true
	}
	n := 0
	for _, id := range required {
		if have[id] {
			n++
		}
	}
	return n
}

func findOrCreateVerification(tx *repository.Repos, assignmentID, documentID uint) (document.Verification, error) {
	v, err := tx.Document.GetVerification(assignmentID, documentID)
	if err == nil {
		return v, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return v, err
	}
	v = document.Verification{
		AssignmentID: assignmentID,
		DocumentID:   documentID,
		Status:       document.VerificationPending,
	}
	return v, tx.Document.CreateVerification(&v)
}

func appendVerificationHistory(tx *repository.Repos, v document.Verification, action document.HistoryAction, prev document.VerificationStatus, reason string, by uint) error {
	return tx.Document.AppendHistory(&document.VerificationHistory{
		VerificationID:  v.ID,
		DocumentID:      v.DocumentID,
		AssignmentID:    v.AssignmentID,
		Action:          action,
		PreviousStatus:  prev,
		NewStatus:       v.Status,
		Reason:          reason,
		PerformedBy:     optionalID(by),
		PerformedByName: displayName(tx, by),
		CreatedAt:       nowFunc(),
	})
}

func applyFile(d *document.Document, f document.FileInfo) {
	d.FileName = f.FileName
	d.FileURL = f.FileURL
	d.FileSize = f.FileSize
	d.MimeType = f.MimeType
	if f.DocumentNumber != "" {
		d.DocumentNumber = f.DocumentNumber
	}
}

func documentPayload(a assignment.Assignment, d document.Document, v document.Verification) map[string]interface{} {
	return map[string]interface{}{
		"assignment_id":    a.ID,
		"candidate_id":     a.CandidateID,
		"project_id":       a.ProjectID,
		"document_id":      d.ID,
		"document_type_id": d.DocumentTypeID,
		"verification_id":  v.ID,
		"status":           string(v.Status),
	}
}
