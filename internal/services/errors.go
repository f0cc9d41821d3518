package services

import (
	"errors"
	"net/http"
)

// Kind classifies a failure the shopper can fix by correcting input.
type Kind string

const (
	KindNoStoreSelected        Kind = "NO_STORE_SELECTED"
	KindEmptyCart              Kind = "EMPTY_CART"
	KindIncompleteCustomerInfo Kind = "INCOMPLETE_CUSTOMER_INFO"
	KindInvalidStoreReference  Kind = "INVALID_STORE_REFERENCE"
	KindProductNotFound        Kind = "PRODUCT_NOT_FOUND"
)

type Metadata struct {
	HTTPStatus    int
	PublicMessage string
}

var metadataByKind = map[Kind]Metadata{
	KindNoStoreSelected: {
		HTTPStatus:    http.StatusUnprocessableEntity,
		PublicMessage: "Por favor, selecione a loja mais próxima para enviar seu pedido.",
	},
	KindEmptyCart: {
		HTTPStatus:    http.StatusUnprocessableEntity,
		PublicMessage: "Seu carrinho está vazio!",
	},
	KindIncompleteCustomerInfo: {
		HTTPStatus:    http.StatusUnprocessableEntity,
		PublicMessage: "Por favor, preencha todos os dados de entrega!",
	},
	KindInvalidStoreReference: {
		HTTPStatus:    http.StatusUnprocessableEntity,
		PublicMessage: "Loja selecionada inválida!",
	},
	KindProductNotFound: {
		HTTPStatus:    http.StatusNotFound,
		PublicMessage: "Produto não encontrado.",
	},
}

// MetadataFor returns the status and message for kind; unknown kinds map to 500.
func MetadataFor(kind Kind) Metadata {
	if meta, ok := metadataByKind[kind]; ok {
		return meta
	}
	return Metadata{HTTPStatus: http.StatusInternalServerError, PublicMessage: "Algo deu errado. Tente novamente."}
}

type Error struct {
	kind  Kind
	cause error
}

func newError(kind Kind) *Error { return &Error{kind: kind} }

func wrapError(kind Kind, cause error) *Error { return &Error{kind: kind, cause: cause} }

func (e *Error) Kind() Kind { return e.kind }

// Message is the text shown to the shopper.
func (e *Error) Message() string { return MetadataFor(e.kind).PublicMessage }

func (e *Error) Error() string {
	if e.cause != nil {
		return string(e.kind) + ": " + e.cause.Error()
	}
	return string(e.kind)
}

func (e *Error) Unwrap() error { return e.cause }

// KindOf extracts the kind from err, or "" when err is not a *Error.
func KindOf(err error) Kind {
	var typed *Error
	if errors.As(err, &typed) {
		return typed.kind
	}
	return ""
}
