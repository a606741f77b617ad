// internal/workers/planner/analyze-business-plan/handler.go
package analyzebusinessplan

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	apperrors "planner-workers/internal/common/errors"
	"planner-workers/internal/common/logger"
	"planner-workers/internal/common/metrics"
	"planner-workers/internal/common/observability"
	"planner-workers/internal/common/validation"
	"planner-workers/internal/engine"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"
)

const TaskType = "analyze-business-plan"

// reportNamespace scopes report ids so equal profiles always map to the same id.
var reportNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("planner-workers/business-plan-report"))

type Handler struct {
	config    *Config
	engine    *engine.Engine
	validator *validation.ProfileValidator
	errors    *apperrors.ErrorHandler
	obs       *observability.Observability
	logger    logger.Logger
}

func NewHandler(config *Config, obs *observability.Observability, log logger.Logger) (*Handler, error) {
	validator, err := validation.NewProfileValidator()
	if err != nil {
		return nil, err
	}
	if config.Timeout <= 0 {
		config.Timeout = 10 * time.Second
	}
	log = log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:    config,
		engine:    engine.New(config.Policy),
		validator: validator,
		errors:    apperrors.NewErrorHandler(log),
		obs:       obs,
		logger:    log,
	}, nil
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	start := time.Now()
	metrics.WorkerJobsActive.WithLabelValues(TaskType).Inc()
	defer metrics.WorkerJobsActive.WithLabelValues(TaskType).Dec()

	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		h.failJob(client, job, apperrors.NewProfileParseError(err), start)
		return
	}

	output, err := h.Execute(ctx, &input)
	if err != nil {
		h.failJob(client, job, err, start)
		return
	}

	if err := h.completeJob(ctx, client, job, output); err != nil {
		h.failJob(client, job, apperrors.NewJobCompletionError(err), start)
		return
	}

	elapsed := time.Since(start)
	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(elapsed.Seconds())
	h.obs.RecordJobProcessed(ctx, "completed")
	h.obs.RecordJobDuration(ctx, elapsed, "completed")
}

// Execute validates the raw profile and runs the analysis. Input problems are
// returned as StandardErrors. An unavailable report is still a result.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("analyze business plan: %w", err)
	}

	result, err := h.validator.Validate(input.Profile)
	if err != nil {
		return nil, apperrors.NewProfileParseError(err)
	}
	if !result.Valid {
		return nil, apperrors.NewProfileValidationError(result.GetErrorMessages())
	}

	var profile engine.BusinessProfile
	if err := json.Unmarshal(input.Profile, &profile); err != nil {
		return nil, apperrors.NewProfileParseError(err)
	}

	report := h.engine.Analyze(profile)
	h.record(ctx, profile, report)

	return &Output{
		ReportID: ReportID(profile),
		Report:   report,
	}, nil
}

// ReportID is a name-based UUID over the profile's JSON encoding.
func ReportID(profile engine.BusinessProfile) string {
	canonical, err := json.Marshal(profile)
	if err != nil {
		return uuid.NewSHA1(reportNamespace, []byte(profile.BusinessName)).String()
	}
	return uuid.NewSHA1(reportNamespace, canonical).String()
}

func (h *Handler) record(ctx context.Context, profile engine.BusinessProfile, report engine.Report) {
	if report.Status != engine.StatusOK || report.Analysis == nil {
		metrics.AnalysesTotal.WithLabelValues(string(report.Status), "").Inc()
		stdErr := apperrors.NewAnalysisUnavailableError(report.Error).
			WithMetadata("businessName", profile.BusinessName)
		h.logger.Error("analysis unavailable", map[string]interface{}{
			"errorCode":    string(stdErr.Code),
			"details":      stdErr.Details,
			"businessName": profile.BusinessName,
			"industry":     profile.Industry,
		})
		return
	}

	a := report.Analysis
	metrics.AnalysesTotal.WithLabelValues(string(report.Status), string(a.UrgencyLevel)).Inc()
	metrics.StrategicScore.Observe(float64(a.StrategicScore))
	metrics.RecommendationsPerReport.Observe(float64(len(report.Recommendations)))
	h.obs.RecordScore(ctx, a.StrategicScore, report.Benchmark.Industry, string(a.UrgencyLevel))

	h.logger.Info("analysis completed", map[string]interface{}{
		"businessName":    profile.BusinessName,
		"industry":        report.Benchmark.Industry,
		"strategicScore":  a.StrategicScore,
		"urgencyLevel":    a.UrgencyLevel,
		"hasBudget":       a.HasBudget,
		"recommendations": len(report.Recommendations),
	})
}

func (h *Handler) completeJob(ctx context.Context, client worker.JobClient, job entities.Job, output *Output) error {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		return fmt.Errorf("create complete job command: %w", err)
	}
	if _, err := cmd.Send(ctx); err != nil {
		return fmt.Errorf("send complete job command: %w", err)
	}
	return nil
}

// failJob reports on a fresh context: the job context may be what expired.
func (h *Handler) failJob(client worker.JobClient, job entities.Job, err error, start time.Time) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	bpmnErr := h.errors.HandleJobError(ctx, client, job, err)

	elapsed := time.Since(start)
	metrics.WorkerJobsFailed.WithLabelValues(TaskType, bpmnErr.Code).Inc()
	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(elapsed.Seconds())
	h.obs.RecordJobProcessed(ctx, "failed")
	h.obs.RecordJobDuration(ctx, elapsed, "failed")
}
