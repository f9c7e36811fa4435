// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package probe

import (
	"github.com/tfctl/envreport/internal/report"
)

// Section headers, in report order.
const (
	HeaderLocal      = "LOCAL MACHINE"
	HeaderCLI        = "AWS CLI INFO"
	HeaderIdentity   = "IDENTITY"
	HeaderKeyPairs   = "KEY PAIRS"
	HeaderInstances  = "EC2 INSTANCES"
	HeaderRoles      = "IAM ROLES"
	HeaderNetwork    = "NETWORK SECURITY"
	HeaderRedshift   = "REDSHIFT CLUSTERS"
	HeaderConnection = "REDSHIFT CONNECTION"
	HeaderBedrock    = "BEDROCK MODELS"
	HeaderGit        = "GIT REPOSITORY"
	HeaderPackages   = "PYTHON PACKAGES"
	HeaderDevEnv     = "DEVELOPMENT ENVIRONMENT"
	HeaderEditor     = "EDITOR"
	HeaderDeploy     = "DEPLOYMENT TARGET"
)

// Sections returns the full, fixed report layout bound to env. The list does
// not depend on env state, so every run shows the same headers in the same
// order.
func Sections(env *Env) []report.Section {
	return []report.Section{
		{Header: HeaderLocal, Items: []report.Item{
			{Label: "OS", Probe: env.OS},
			{Label: "Python", Probe: env.PythonVersion},
			{Label: "Python Path", Probe: env.PythonPath},
			{Label: "Working Directory", Probe: env.WorkingDir},
			{Label: "User", Probe: env.User},
			{Label: "Terminal", Probe: env.Terminal},
		}},
		{Header: HeaderCLI, Items: []report.Item{
			{Label: "AWS CLI", Probe: env.CLIVersion},
			{Label: "Region", Probe: env.Region},
			{Label: "Profile", Probe: env.Profile},
		}},
		{Header: HeaderIdentity, Items: []report.Item{
			{Probe: env.Identity},
		}},
		{Header: HeaderKeyPairs, Items: []report.Item{
			{Label: "AWS Key Pairs", Probe: env.KeyPairs},
			{Label: "Local Key Files", Probe: env.LocalKeys},
		}},
		{Header: HeaderInstances, Items: []report.Item{
			{Label: "Running Instances", Probe: env.Instances},
		}},
		{Header: HeaderRoles, Items: []report.Item{
			{Label: "Matching Roles", Probe: env.Roles},
		}},
		{Header: HeaderNetwork, Items: []report.Item{
			{Label: "Security Groups", Probe: env.SecurityGroups},
			{Label: "Default VPC", Probe: env.DefaultVPCs},
			{Label: "Default Subnets", Probe: env.DefaultSubnets},
		}},
		{Header: HeaderRedshift, Items: []report.Item{
			{Label: "Clusters", Probe: env.Clusters},
		}},
		{Header: HeaderConnection, Items: []report.Item{
			{Label: "Settings", Probe: env.ConnectionSettings},
			{Label: "Missing", Probe: env.ConnectionMissing},
			{Label: "URI", Probe: env.ConnectionURI},
			{Label: "Reachable", Probe: env.ConnectionReachable},
		}},
		{Header: HeaderBedrock, Items: []report.Item{
			{Label: "Foundation Models", Probe: env.Models},
		}},
		{Header: HeaderGit, Items: []report.Item{
			{Probe: env.Git},
		}},
		{Header: HeaderPackages, Items: []report.Item{
			{Probe: env.Packages},
		}},
		{Header: HeaderDevEnv, Items: []report.Item{
			{Label: "Virtual Environment", Probe: env.VirtualEnv},
			{Label: "Tools", Probe: env.Tools},
		}},
		{Header: HeaderEditor, Items: []report.Item{
			{Label: "VS Code", Probe: env.Editor},
			{Label: "AWS Profiles", Probe: env.AWSProfiles},
		}},
		{Header: HeaderDeploy, Items: []report.Item{
			{Label: "Region", Probe: report.Static(env.Settings.Deploy.Region)},
			{Label: "Repository", Probe: report.Static(env.Settings.Deploy.Repository)},
			{Label: "Description", Probe: report.Static(env.Settings.Deploy.Description)},
		}},
	}
}

// Headers lists the section headers without binding any probe.
func Headers() []string {
	return report.Headers(Sections(&Env{Settings: DefaultSettings()}))
}
