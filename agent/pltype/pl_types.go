package pltype

// Namespace constants
const (
	Terminate = ""
	Nothing   = ""

	Aries       = "did:sov:BzCbsNYhMrjHiqZDTUASHg;spec"                           // Aries protocols, legacy prefix
	DIDOrgAries = "https://didcomm.org"                                           // Aries protocols
	Toolbox     = "https://github.com/hyperledger/aries-toolbox/tree/master/docs" // Toolbox admin protocols

	AdminVersion = "0.1"
)

// Notification protocol constants
const (
	ProtocolNotification            = "notification"
	HandlerProblemReport            = "problem-report"
	HandlerAck                      = "ack"
	ProblemReport                   = Aries + "/" + ProtocolNotification
	NotificationProblemReport       = ProblemReport + "/1.0/" + HandlerProblemReport
	NotificationAck                 = ProblemReport + "/1.0/" + HandlerAck
	DIDOrgNotificationProblemReport = DIDOrgAries + "/" + ProtocolNotification + "/1.0/" + HandlerProblemReport
)

// Basic Message protocol constants
const (
	ProtocolBasicMessage = "basicmessage"
	HandlerMessage       = "message"
	BasicMessage         = Aries + "/" + ProtocolBasicMessage
	BasicMessageSend     = BasicMessage + "/1.0/" + HandlerMessage
	DIDOrgBasicMessage   = DIDOrgAries + "/" + ProtocolBasicMessage + "/1.0/" + HandlerMessage
)

func admin(family, name string) string {
	return Toolbox + "/" + family + "/" + AdminVersion + "/" + name
}

// Admin basic message protocol constants
const (
	ProtocolAdminBasicMessage  = "admin-basicmessage"
	HandlerBasicMessageGet     = "get"
	HandlerBasicMessageList    = "messages"
	HandlerBasicMessageSend    = "send"
	HandlerBasicMessageSent    = "sent"
	HandlerBasicMessageDelete  = "delete"
	HandlerBasicMessageDeleted = "deleted"
	HandlerBasicMessageNew     = "new"
)

var (
	AdminBasicMessageGet     = admin(ProtocolAdminBasicMessage, HandlerBasicMessageGet)
	AdminBasicMessageList    = admin(ProtocolAdminBasicMessage, HandlerBasicMessageList)
	AdminBasicMessageSend    = admin(ProtocolAdminBasicMessage, HandlerBasicMessageSend)
	AdminBasicMessageSent    = admin(ProtocolAdminBasicMessage, HandlerBasicMessageSent)
	AdminBasicMessageDelete  = admin(ProtocolAdminBasicMessage, HandlerBasicMessageDelete)
	AdminBasicMessageDeleted = admin(ProtocolAdminBasicMessage, HandlerBasicMessageDeleted)
	AdminBasicMessageNew     = admin(ProtocolAdminBasicMessage, HandlerBasicMessageNew)
)

// Admin connections protocol constants
const (
	ProtocolAdminConnections     = "admin-connections"
	HandlerConnGetList           = "get-list"
	HandlerConnList              = "list"
	HandlerConnGet               = "get"
	HandlerConnConnection        = "connection"
	HandlerConnUpdate            = "update"
	HandlerConnDelete            = "delete"
	HandlerConnDeleted           = "deleted"
	HandlerConnReceiveInvitation = "receive-invitation"
	HandlerConnAcceptInvitation  = "accept-invitation"
	HandlerConnAcceptRequest     = "accept-request"
	HandlerConnConnected         = "connected"
)

var (
	AdminConnGetList           = admin(ProtocolAdminConnections, HandlerConnGetList)
	AdminConnList              = admin(ProtocolAdminConnections, HandlerConnList)
	AdminConnGet               = admin(ProtocolAdminConnections, HandlerConnGet)
	AdminConnConnection        = admin(ProtocolAdminConnections, HandlerConnConnection)
	AdminConnUpdate            = admin(ProtocolAdminConnections, HandlerConnUpdate)
	AdminConnDelete            = admin(ProtocolAdminConnections, HandlerConnDelete)
	AdminConnDeleted           = admin(ProtocolAdminConnections, HandlerConnDeleted)
	AdminConnReceiveInvitation = admin(ProtocolAdminConnections, HandlerConnReceiveInvitation)
	AdminConnAcceptInvitation  = admin(ProtocolAdminConnections, HandlerConnAcceptInvitation)
	AdminConnAcceptRequest     = admin(ProtocolAdminConnections, HandlerConnAcceptRequest)
	AdminConnConnected         = admin(ProtocolAdminConnections, HandlerConnConnected)
)

// Admin credential definitions protocol constants
const (
	ProtocolAdminCredDefs = "admin-credential-definitions"
	HandlerCredDefSend    = "send-cred-def"
	HandlerCredDefID      = "cred-def-id"
	HandlerCredDefGet     = "cred-def-get"
	HandlerCredDef        = "cred-def"
	HandlerCredDefGetList = "cred-def-get-list"
	HandlerCredDefList    = "cred-def-list"
)

var (
	AdminCredDefSend    = admin(ProtocolAdminCredDefs, HandlerCredDefSend)
	AdminCredDefID      = admin(ProtocolAdminCredDefs, HandlerCredDefID)
	AdminCredDefGet     = admin(ProtocolAdminCredDefs, HandlerCredDefGet)
	AdminCredDef        = admin(ProtocolAdminCredDefs, HandlerCredDef)
	AdminCredDefGetList = admin(ProtocolAdminCredDefs, HandlerCredDefGetList)
	AdminCredDefList    = admin(ProtocolAdminCredDefs, HandlerCredDefList)
)

// Admin DIDs protocol constants
const (
	ProtocolAdminDIDs     = "admin-dids"
	HandlerDIDGetList     = "get-list"
	HandlerDIDList        = "list"
	HandlerDIDCreate      = "create-did"
	HandlerDID            = "did"
	HandlerDIDSetMetadata = "set-did-metadata"
	HandlerDIDGetPublic   = "get-public-did"
	HandlerDIDSetPublic   = "set-public-did"
)

var (
	AdminDIDGetList     = admin(ProtocolAdminDIDs, HandlerDIDGetList)
	AdminDIDList        = admin(ProtocolAdminDIDs, HandlerDIDList)
	AdminDIDCreate      = admin(ProtocolAdminDIDs, HandlerDIDCreate)
	AdminDID            = admin(ProtocolAdminDIDs, HandlerDID)
	AdminDIDSetMetadata = admin(ProtocolAdminDIDs, HandlerDIDSetMetadata)
	AdminDIDGetPublic   = admin(ProtocolAdminDIDs, HandlerDIDGetPublic)
	AdminDIDSetPublic   = admin(ProtocolAdminDIDs, HandlerDIDSetPublic)
)

// Admin invitations protocol constants
const (
	ProtocolAdminInvitations = "admin-invitations"
	HandlerInvitationCreate  = "create"
	HandlerInvitation        = "invitation"
	HandlerInvitationGetList = "get-list"
	HandlerInvitationList    = "list"
)

var (
	AdminInvitationCreate  = admin(ProtocolAdminInvitations, HandlerInvitationCreate)
	AdminInvitation        = admin(ProtocolAdminInvitations, HandlerInvitation)
	AdminInvitationGetList = admin(ProtocolAdminInvitations, HandlerInvitationGetList)
	AdminInvitationList    = admin(ProtocolAdminInvitations, HandlerInvitationList)
)

// Admin issuer protocol constants
const (
	ProtocolAdminIssuer               = "admin-issuer"
	HandlerIssuerSendCredential       = "send-credential"
	HandlerIssuerCredExchange         = "cred-exchange"
	HandlerIssuerRequestPresentation  = "request-presentation"
	HandlerIssuerPresExchange         = "presentation-exchange"
	HandlerIssuerCredentialsGetList   = "credentials-get-list"
	HandlerIssuerCredentialsList      = "credentials-list"
	HandlerIssuerPresentationsGetList = "presentations-get-list"
	HandlerIssuerPresentationsList    = "presentations-list"
)

var (
	AdminIssuerSendCredential       = admin(ProtocolAdminIssuer, HandlerIssuerSendCredential)
	AdminIssuerCredExchange         = admin(ProtocolAdminIssuer, HandlerIssuerCredExchange)
	AdminIssuerRequestPresentation  = admin(ProtocolAdminIssuer, HandlerIssuerRequestPresentation)
	AdminIssuerPresExchange         = admin(ProtocolAdminIssuer, HandlerIssuerPresExchange)
	AdminIssuerCredentialsGetList   = admin(ProtocolAdminIssuer, HandlerIssuerCredentialsGetList)
	AdminIssuerCredentialsList      = admin(ProtocolAdminIssuer, HandlerIssuerCredentialsList)
	AdminIssuerPresentationsGetList = admin(ProtocolAdminIssuer, HandlerIssuerPresentationsGetList)
	AdminIssuerPresentationsList    = admin(ProtocolAdminIssuer, HandlerIssuerPresentationsList)
)

// Admin holder protocol constants
const (
	ProtocolAdminHolder               = "admin-holder"
	HandlerHolderSendCredProposal     = "send-credential-proposal"
	HandlerHolderCredExchange         = "cred-exchange"
	HandlerHolderCredOfferAccept      = "credential-offer-accept"
	HandlerHolderCredRequestSent      = "cred-request-sent"
	HandlerHolderCredentialsGetList   = "credentials-get-list"
	HandlerHolderCredentialsList      = "credentials-list"
	HandlerHolderSendPresProposal     = "send-presentation-proposal"
	HandlerHolderPresExchange         = "presentation-exchange"
	HandlerHolderPresRequestApprove   = "presentation-request-approve"
	HandlerHolderPresSent             = "presentation-sent"
	HandlerHolderPresentationsGetList = "presentations-get-list"
	HandlerHolderPresentationsList    = "presentations-list"
)

var (
	AdminHolderSendCredProposal     = admin(ProtocolAdminHolder, HandlerHolderSendCredProposal)
	AdminHolderCredExchange         = admin(ProtocolAdminHolder, HandlerHolderCredExchange)
	AdminHolderCredOfferAccept      = admin(ProtocolAdminHolder, HandlerHolderCredOfferAccept)
	AdminHolderCredRequestSent      = admin(ProtocolAdminHolder, HandlerHolderCredRequestSent)
	AdminHolderCredentialsGetList   = admin(ProtocolAdminHolder, HandlerHolderCredentialsGetList)
	AdminHolderCredentialsList      = admin(ProtocolAdminHolder, HandlerHolderCredentialsList)
	AdminHolderSendPresProposal     = admin(ProtocolAdminHolder, HandlerHolderSendPresProposal)
	AdminHolderPresExchange         = admin(ProtocolAdminHolder, HandlerHolderPresExchange)
	AdminHolderPresRequestApprove   = admin(ProtocolAdminHolder, HandlerHolderPresRequestApprove)
	AdminHolderPresSent             = admin(ProtocolAdminHolder, HandlerHolderPresSent)
	AdminHolderPresentationsGetList = admin(ProtocolAdminHolder, HandlerHolderPresentationsGetList)
	AdminHolderPresentationsList    = admin(ProtocolAdminHolder, HandlerHolderPresentationsList)
)

// Admin mediator protocol constants
const (
	ProtocolAdminMediator           = "admin-mediator"
	HandlerMediationRequestsGetList = "mediation-requests-get-list"
	HandlerMediationRequests        = "mediation-requests"
	HandlerMediationGrant           = "mediation-grant"
	HandlerMediationGranted         = "mediation-granted"
	HandlerMediationDeny            = "mediation-deny"
	HandlerMediationDenied          = "mediation-denied"
	HandlerKeylistsGetList          = "keylists-get-list"
	HandlerKeylists                 = "keylists"
)

var (
	AdminMediationRequestsGetList = admin(ProtocolAdminMediator, HandlerMediationRequestsGetList)
	AdminMediationRequests        = admin(ProtocolAdminMediator, HandlerMediationRequests)
	AdminMediationGrant           = admin(ProtocolAdminMediator, HandlerMediationGrant)
	AdminMediationGranted         = admin(ProtocolAdminMediator, HandlerMediationGranted)
	AdminMediationDeny            = admin(ProtocolAdminMediator, HandlerMediationDeny)
	AdminMediationDenied          = admin(ProtocolAdminMediator, HandlerMediationDenied)
	AdminKeylistsGetList          = admin(ProtocolAdminMediator, HandlerKeylistsGetList)
	AdminKeylists                 = admin(ProtocolAdminMediator, HandlerKeylists)
)

// Admin routing protocol constants
const (
	ProtocolAdminRouting        = "admin-routing"
	HandlerMediationRequestSend = "mediation-request-send"
	HandlerMediationRequestSent = "mediation-request-sent"
	HandlerKeylistUpdateSend    = "keylist-update-send"
	HandlerKeylistUpdateSent    = "keylist-update-sent"
	HandlerMediationGetList     = "mediation-get-list"
	HandlerMediationList        = "mediation-list"
)

var (
	AdminMediationRequestSend = admin(ProtocolAdminRouting, HandlerMediationRequestSend)
	AdminMediationRequestSent = admin(ProtocolAdminRouting, HandlerMediationRequestSent)
	AdminKeylistUpdateSend    = admin(ProtocolAdminRouting, HandlerKeylistUpdateSend)
	AdminKeylistUpdateSent    = admin(ProtocolAdminRouting, HandlerKeylistUpdateSent)
	AdminMediationGetList     = admin(ProtocolAdminRouting, HandlerMediationGetList)
	AdminMediationList        = admin(ProtocolAdminRouting, HandlerMediationList)
)

// Admin schemas protocol constants
const (
	ProtocolAdminSchemas = "admin-schemas"
	HandlerSchemaSend    = "send-schema"
	HandlerSchemaID      = "schema-id"
	HandlerSchemaGet     = "schema-get"
	HandlerSchema        = "schema"
	HandlerSchemaGetList = "schema-get-list"
	HandlerSchemaList    = "schema-list"
)

var (
	AdminSchemaSend    = admin(ProtocolAdminSchemas, HandlerSchemaSend)
	AdminSchemaID      = admin(ProtocolAdminSchemas, HandlerSchemaID)
	AdminSchemaGet     = admin(ProtocolAdminSchemas, HandlerSchemaGet)
	AdminSchema        = admin(ProtocolAdminSchemas, HandlerSchema)
	AdminSchemaGetList = admin(ProtocolAdminSchemas, HandlerSchemaGetList)
	AdminSchemaList    = admin(ProtocolAdminSchemas, HandlerSchemaList)
)

// Admin static connections protocol constants
const (
	ProtocolAdminStaticConns = "admin-static-connections"
	HandlerStaticConnCreate  = "create-static-connection"
	HandlerStaticConnInfo    = "static-connection-info"
	HandlerStaticConnGetList = "static-connection-get-list"
	HandlerStaticConnList    = "static-connection-list"
)

var (
	AdminStaticConnCreate  = admin(ProtocolAdminStaticConns, HandlerStaticConnCreate)
	AdminStaticConnInfo    = admin(ProtocolAdminStaticConns, HandlerStaticConnInfo)
	AdminStaticConnGetList = admin(ProtocolAdminStaticConns, HandlerStaticConnGetList)
	AdminStaticConnList    = admin(ProtocolAdminStaticConns, HandlerStaticConnList)
)

// Admin transaction author agreement protocol constants
const (
	ProtocolAdminTAA        = "admin-taa"
	HandlerTAAGet           = "get"
	HandlerTAA              = "taa"
	HandlerTAAAccept        = "accept"
	HandlerTAAAccepted      = "accepted"
	HandlerTAAGetAcceptance = "get-acceptance"
	HandlerTAAAcceptance    = "acceptance"
)

var (
	AdminTAAGet           = admin(ProtocolAdminTAA, HandlerTAAGet)
	AdminTAA              = admin(ProtocolAdminTAA, HandlerTAA)
	AdminTAAAccept        = admin(ProtocolAdminTAA, HandlerTAAAccept)
	AdminTAAAccepted      = admin(ProtocolAdminTAA, HandlerTAAAccepted)
	AdminTAAGetAcceptance = admin(ProtocolAdminTAA, HandlerTAAGetAcceptance)
	AdminTAAAcceptance    = admin(ProtocolAdminTAA, HandlerTAAAcceptance)
)
