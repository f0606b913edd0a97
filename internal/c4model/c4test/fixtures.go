// Package c4test provides workspaces for tests. Fixtures go through the real
// parser and mapper so tests exercise the same model the server loads.
package c4test

import (
	"testing"

	"github.com/GoSim-25-26J-441/c4model-api/internal/c4model/domain"
	"github.com/GoSim-25-26J-441/c4model-api/internal/c4model/ingest/mapper"
	"github.com/GoSim-25-26J-441/c4model-api/internal/c4model/ingest/parser"
)

// MinimalYAML is one software system with two containers and a single
// context view.
const MinimalYAML = `
name: Minimal
model:
  softwareSystems:
    - id: "1"
      name: S
      containers:
        - id: "2"
          name: A
          technology: Java, Spring
          relationships:
            - id: "4"
              destinationId: "3"
              description: calls
              technology: HTTP
        - id: "3"
          name: B
          technology: Go
views:
  systemContextViews:
    - key: ctx1
      softwareSystemId: "1"
      elements:
        - id: "2"
        - id: "3"
      relationships:
        - id: "4"
`

// BigBankYAML is a full four-level model with dynamic views.
const BigBankYAML = `
name: Big Bank plc
description: Internet banking example
model:
  people:
    - id: "10"
      name: Personal Banking Customer
      description: A customer of the bank.
      tags: Customer
      relationships:
        - id: "20"
          destinationId: "1"
          description: Views account balances, and makes payments using
        - id: "21"
          destinationId: "2"
          description: Visits bigbank.com/ib using
          technology: HTTPS
  softwareSystems:
    - id: "1"
      name: Internet Banking System
      description: Allows customers to view information about their bank accounts.
      relationships:
        - id: "22"
          destinationId: "7"
          description: Gets account information from, and makes payments using
        - id: "23"
          destinationId: "8"
          description: Sends e-mail using
      containers:
        - id: "2"
          name: Web Application
          technology: Java and Spring MVC
          relationships:
            - id: "24"
              destinationId: "3"
              description: Makes API calls to
              technology: JSON A HTTPS
        - id: "3"
          name: API Application
          technology: Java and Spring MVC
          relationships:
            - id: "25"
              destinationId: "4"
              description: Reads from and writes to
              technology: SQL/TCP
            - id: "26"
              destinationId: "7"
              description: Makes API calls to
              technology: XML/HTTPS
          components:
            - id: "5"
              name: Sign In Controller
              technology: Spring MVC Rest Controller
              relationships:
                - id: "27"
                  destinationId: "6"
                  description: Uses
            - id: "6"
              name: Security Component
              technology: Spring Bean
              relationships:
                - id: "28"
                  destinationId: "4"
                  description: Reads from and writes to
                  technology: SQL/TCP
        - id: "4"
          name: Database
          technology: Oracle Database Schema
          tags: Database
    - id: "7"
      name: Mainframe Banking System
      tags: Existing System
    - id: "8"
      name: E-mail System
      tags: Existing System
views:
  systemLandscapeViews:
    - key: SystemLandscape
      elements:
        - id: "10"
        - id: "1"
        - id: "7"
        - id: "8"
      relationships:
        - id: "20"
        - id: "22"
        - id: "23"
      automaticLayout:
        rankDirection: TopBottom
        rankSeparation: 300
        nodeSeparation: 300
  systemContextViews:
    - key: SystemContext
      softwareSystemId: "1"
      description: The system context diagram for the Internet Banking System.
      elements:
        - id: "10"
        - id: "1"
        - id: "7"
        - id: "8"
      relationships:
        - id: "20"
        - id: "22"
        - id: "23"
  containerViews:
    - key: Containers
      softwareSystemId: "1"
      title: Containers of the Internet Banking System
      elements:
        - id: "10"
        - id: "2"
        - id: "3"
        - id: "4"
        - id: "7"
      relationships:
        - id: "21"
        - id: "24"
        - id: "25"
        - id: "26"
      automaticLayout:
        rankDirection: LeftRight
        rankSeparation: 200
        nodeSeparation: 100
  componentViews:
    - key: Components
      containerId: "3"
      elements:
        - id: "2"
        - id: "5"
        - id: "6"
        - id: "4"
      relationships:
        - id: "27"
        - id: "28"
  dynamicViews:
    - key: SignIn
      elementId: "3"
      title: Customer signs in
      relationships:
        - id: "27"
          order: "1"
        - id: "28"
          order: "2"
    - key: Payments
      elementId: "1"
      name: Payments
      title: Customer makes a payment
      relationships:
        - id: "24"
          order: "1"
        - id: "26"
          order: "2"
`

// Load parses and maps the given YAML, failing the test on error.
func Load(t testing.TB, yamlSrc string) *domain.Workspace {
	t.Helper()
	doc, err := parser.ParseYAMLString(yamlSrc)
	if err != nil {
		t.Fatalf("parse workspace: %v", err)
	}
	ws, err := mapper.ToWorkspace(doc)
	if err != nil {
		t.Fatalf("map workspace: %v", err)
	}
	return ws
}

func Minimal(t testing.TB) *domain.Workspace {
	return Load(t, MinimalYAML)
}

func BigBank(t testing.TB) *domain.Workspace {
	return Load(t, BigBankYAML)
}
