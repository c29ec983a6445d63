package bootstrap

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"k8s.io/apimachinery/pkg/api/resource"
	"k8s.io/apimachinery/pkg/labels"
	"k8s.io/apimachinery/pkg/util/validation"
)

// Kind names a managed resource kind.
type Kind string

const (
	KindNamespace    Kind = "Namespace"
	KindHelmRelease  Kind = "HelmRelease"
	KindDeployment   Kind = "Deployment"
	KindService      Kind = "Service"
	KindScaledObject Kind = "ScaledObject"
)

// Action is what provisioning did with a resource.
type Action string

const (
	ActionCreated Action = "created"
	ActionSkipped Action = "skipped"
)

// PodPhase mirrors the pod lifecycle phase reported by the control plane.
type PodPhase string

const PodRunning PodPhase = "Running"

// Pod represents a Kubernetes pod in the domain layer.
type Pod struct {
	Name      string
	Namespace string
	Phase     PodPhase
}

// Release is an installed chart release as listed by the package manager.
type Release struct {
	Name      string
	Namespace string
	Chart     string
	Status    string
}

// Resources holds per-container compute requests and limits.
type Resources struct {
	CPURequest    resource.Quantity
	CPULimit      resource.Quantity
	MemoryRequest resource.Quantity
	MemoryLimit   resource.Quantity
}

// DefaultResources returns the fixed container resources of a bootstrapped workload.
func DefaultResources() Resources {
	return Resources{
		CPURequest:    resource.MustParse(DefaultCPURequest),
		CPULimit:      resource.MustParse(DefaultCPULimit),
		MemoryRequest: resource.MustParse(DefaultMemoryRequest),
		MemoryLimit:   resource.MustParse(DefaultMemoryLimit),
	}
}

// Workload is the desired state of the Deployment.
type Workload struct {
	Name      string
	Namespace string
	Image     string
	Replicas  int32
	Resources Resources
	Ports     []int32
}

// NewWorkload builds a validated Workload with the fixed resources and port 80.
// An empty namespace means DefaultNamespace.
func NewWorkload(name, namespace, image string, replicas int32) (Workload, error) {
	if namespace == "" {
		namespace = DefaultNamespace
	}

	w := Workload{
		Name:      name,
		Namespace: namespace,
		Image:     image,
		Replicas:  replicas,
		Resources: DefaultResources(),
		Ports:     []int32{DefaultContainerPort},
	}

	if err := w.Validate(); err != nil {
		return Workload{}, err
	}

	return w, nil
}

// Validate checks the fields required to create the Deployment.
func (w Workload) Validate() error {
	var errs []error

	errs = append(errs, validateName("name", w.Name, validation.IsDNS1123Label)...)
	errs = append(errs, validateName("namespace", w.Namespace, validation.IsDNS1123Label)...)

	if strings.TrimSpace(w.Image) == "" {
		errs = append(errs, errors.New("image is required"))
	}

	if w.Replicas < 0 {
		errs = append(errs, fmt.Errorf("replicas %d: must be non-negative", w.Replicas))
	}

	if len(w.Ports) == 0 {
		errs = append(errs, errors.New("at least one container port is required"))
	}

	for _, port := range w.Ports {
		for _, msg := range validation.IsValidPortNum(int(port)) {
			errs = append(errs, fmt.Errorf("port %d: %s", port, msg))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: workload: %w", ErrInvalidInput, errors.Join(errs...))
	}

	return nil
}

// Labels returns the selector and template labels derived from the workload name.
func (w Workload) Labels() map[string]string {
	return map[string]string{AppLabelKey: w.Name}
}

// ServiceType is the way a Service is exposed.
type ServiceType string

const ServiceTypeNodePort ServiceType = "NodePort"

// ServiceSpec is the desired state of the Service exposing a workload.
type ServiceSpec struct {
	Name      string
	Namespace string
	Type      ServiceType
	Selector  map[string]string
	// Ports are mapped 1:1 to target ports.
	Ports []int32
}

// NewServiceSpec derives the node-exposed Service of a workload.
func NewServiceSpec(w Workload) (ServiceSpec, error) {
	s := ServiceSpec{
		Name:      w.Name + ServiceNameSuffix,
		Namespace: w.Namespace,
		Type:      ServiceTypeNodePort,
		Selector:  w.Labels(),
		Ports:     slices.Clone(w.Ports),
	}

	if errs := validateName("service name", s.Name, validation.IsDNS1035Label); len(errs) > 0 {
		return ServiceSpec{}, fmt.Errorf("%w: service: %w", ErrInvalidInput, errors.Join(errs...))
	}

	return s, nil
}

// ScalingTrigger is one metric the autoscaler scales on.
type ScalingTrigger struct {
	Type       string
	MetricType string
	Value      string
}

// DefaultTriggers returns cpu and memory utilization triggers at 50%.
func DefaultTriggers() []ScalingTrigger {
	return []ScalingTrigger{
		{Type: TriggerTypeCPU, MetricType: MetricTypeUtilization, Value: DefaultUtilizationTarget},
		{Type: TriggerTypeMemory, MetricType: MetricTypeUtilization, Value: DefaultUtilizationTarget},
	}
}

// Validate checks the trigger type and target value.
func (t ScalingTrigger) Validate() error {
	if t.Type != TriggerTypeCPU && t.Type != TriggerTypeMemory {
		return fmt.Errorf("trigger type %q: must be %s or %s", t.Type, TriggerTypeCPU, TriggerTypeMemory)
	}

	if t.MetricType != MetricTypeUtilization {
		return fmt.Errorf("trigger %s metric type %q: must be %s", t.Type, t.MetricType, MetricTypeUtilization)
	}

	value, err := strconv.Atoi(t.Value)
	if err != nil {
		return fmt.Errorf("trigger %s value %q: %w", t.Type, t.Value, err)
	}

	if value <= 0 || value > maxUtilizationTarget {
		return fmt.Errorf("trigger %s value %d: must be in 1..%d", t.Type, value, maxUtilizationTarget)
	}

	return nil
}

// ScaledObjectSpec is the desired state of the autoscaling policy.
type ScaledObjectSpec struct {
	Name            string
	Namespace       string
	ScaleTargetName string
	MinReplicaCount int32
	Triggers        []ScalingTrigger
}

// NewScaledObjectSpec derives the scaling policy bound to a workload.
func NewScaledObjectSpec(w Workload, triggers []ScalingTrigger) (ScaledObjectSpec, error) {
	s := ScaledObjectSpec{
		Name:            w.Name + ScaledObjectNameSuffix,
		Namespace:       w.Namespace,
		ScaleTargetName: w.Name,
		MinReplicaCount: DefaultMinReplicaCount,
		Triggers:        slices.Clone(triggers),
	}

	errs := validateName("scaled object name", s.Name, validation.IsDNS1123Subdomain)

	if len(s.Triggers) == 0 {
		errs = append(errs, errors.New("at least one trigger is required"))
	}

	for _, trigger := range s.Triggers {
		if err := trigger.Validate(); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return ScaledObjectSpec{}, fmt.Errorf("%w: scaled object: %w", ErrInvalidInput, errors.Join(errs...))
	}

	return s, nil
}

// AutoscalerSpec describes the autoscaling controller release.
type AutoscalerSpec struct {
	Namespace        string
	Release          string
	Chart            string
	RepoName         string
	RepoURL          string
	PodLabelSelector string
	WaitTimeout      time.Duration
}

// DefaultAutoscalerSpec returns the KEDA release installed from the kedacore repository.
func DefaultAutoscalerSpec() AutoscalerSpec {
	return AutoscalerSpec{
		Namespace:        DefaultAutoscalerNamespace,
		Release:          DefaultAutoscalerRelease,
		Chart:            DefaultAutoscalerChart,
		RepoName:         DefaultAutoscalerRepoName,
		RepoURL:          DefaultAutoscalerRepoURL,
		PodLabelSelector: DefaultAutoscalerPodLabelSelector,
		WaitTimeout:      DefaultPodWaitTimeout,
	}
}

func (a AutoscalerSpec) Validate() error {
	var errs []error

	errs = append(errs, validateName("autoscaler namespace", a.Namespace, validation.IsDNS1123Label)...)
	errs = append(errs, validateName("autoscaler release", a.Release, validation.IsDNS1123Label)...)

	if a.Chart == "" {
		errs = append(errs, errors.New("autoscaler chart is required"))
	}

	if a.RepoName == "" {
		errs = append(errs, errors.New("autoscaler repo name is required"))
	}

	if u, err := url.Parse(a.RepoURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("autoscaler repo url %q: must be an absolute url", a.RepoURL))
	}

	if _, err := labels.Parse(a.PodLabelSelector); err != nil {
		errs = append(errs, fmt.Errorf("autoscaler pod label selector: %w", err))
	}

	if a.WaitTimeout <= 0 {
		errs = append(errs, fmt.Errorf("autoscaler wait timeout %s: must be positive", a.WaitTimeout))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: autoscaler: %w", ErrInvalidInput, errors.Join(errs...))
	}

	return nil
}

// Plan is the full validated set of resources one run provisions, in order.
type Plan struct {
	Autoscaler   AutoscalerSpec
	Workload     Workload
	Service      ServiceSpec
	ScaledObject ScaledObjectSpec
}

// NewPlan validates the autoscaler spec and derives the service and scaling policy of the workload.
func NewPlan(autoscaler AutoscalerSpec, workload Workload, triggers []ScalingTrigger) (*Plan, error) {
	if err := autoscaler.Validate(); err != nil {
		return nil, err
	}

	if err := workload.Validate(); err != nil {
		return nil, err
	}

	service, err := NewServiceSpec(workload)
	if err != nil {
		return nil, err
	}

	scaledObject, err := NewScaledObjectSpec(workload, triggers)
	if err != nil {
		return nil, err
	}

	return &Plan{
		Autoscaler:   autoscaler,
		Workload:     workload,
		Service:      service,
		ScaledObject: scaledObject,
	}, nil
}

// Outcome records what happened to one managed resource.
type Outcome struct {
	Kind      Kind   `json:"kind"`
	Namespace string `json:"namespace,omitempty"`
	Name      string `json:"name"`
	Action    Action `json:"action"`
}

// Report is the ordered result of one run.
type Report struct {
	Outcomes   []Outcome `json:"outcomes"`
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt,omitzero"`
}

// Count returns the number of outcomes with the given action.
func (r *Report) Count(action Action) int {
	n := 0

	for _, o := range r.Outcomes {
		if o.Action == action {
			n++
		}
	}

	return n
}

func validateName(field, value string, validate func(string) []string) []error {
	msgs := validate(value)
	errs := make([]error, 0, len(msgs))

	for _, msg := range msgs {
		errs = append(errs, fmt.Errorf("%s %q: %s", field, value, msg))
	}

	return errs
}

// Step is a stage of the bootstrap sequence.
type Step string

const (
	StepConnect             Step = "connect"
	StepEnsureAutoscaler    Step = "ensure-autoscaler"
	StepCreateDeployment    Step = "create-deployment"
	StepCreateService       Step = "create-service"
	StepCreateScalingPolicy Step = "create-scaling-policy"
	StepDone                Step = "done"
)
