package config

import "time"

// All env vars use the AUTOSCALE_BOOTSTRAP_ prefix; duration values support
// explicit units (e.g. 5m, 40s, 2h). Keys are declared in the Config struct tags.
const envPrefix = "AUTOSCALE_BOOTSTRAP_"

// Standard k8s env keys used as fallback when the prefixed keys are unset.
const (
	envKeyKubeConfigFallback = "KUBECONFIG"
	envKeyKubeMasterFallback = "KUBERNETES_MASTER"
)

// Lower bounds for POD_POLL_INTERVAL and POD_WAIT_TIMEOUT.
const (
	envMinPodPollInterval = time.Second
	envMinPodWaitTimeout  = 10 * time.Second
)
