// Package render prints the objects a run would create, without a cluster.
package render

import (
	"fmt"
	"io"

	"sigs.k8s.io/yaml"

	"github.com/skillcoder/autoscale-bootstrap/internal/adapters/outbound/k8s"
	"github.com/skillcoder/autoscale-bootstrap/internal/logic/bootstrap"
)

const documentSeparator = "---\n"

// Manifests writes the plan as a multi-document YAML stream in provisioning order.
// The chart release is not a cluster object and is written as a comment.
func Manifests(w io.Writer, plan *bootstrap.Plan) error {
	a := plan.Autoscaler

	_, err := fmt.Fprintf(w, "# helm install %s %s --namespace %s --wait --timeout %s (repo %s %s)\n",
		a.Release, a.Chart, a.Namespace, a.WaitTimeout, a.RepoName, a.RepoURL)
	if err != nil {
		return fmt.Errorf("write release comment: %w", err)
	}

	objects := []any{
		k8s.BuildNamespace(a.Namespace),
		k8s.BuildDeployment(plan.Workload),
		k8s.BuildService(plan.Service),
		k8s.BuildScaledObject(plan.ScaledObject).Object,
	}

	for _, obj := range objects {
		err = document(w, obj)
		if err != nil {
			return err
		}
	}

	return nil
}

// Report writes the outcomes of a run as YAML.
func Report(w io.Writer, report *bootstrap.Report) error {
	return document(w, report)
}

func document(w io.Writer, obj any) error {
	out, err := yaml.Marshal(obj)
	if err != nil {
		return fmt.Errorf("marshal %T: %w", obj, err)
	}

	if _, err = io.WriteString(w, documentSeparator); err != nil {
		return fmt.Errorf("write separator: %w", err)
	}

	if _, err = w.Write(out); err != nil {
		return fmt.Errorf("write %T: %w", obj, err)
	}

	return nil
}
