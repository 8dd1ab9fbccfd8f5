package kernel

import "testing"

func TestContextRecvClosed(t *testing.T) {
	k := New()
	cap := k.NewEndpoint(RightSend | RightRecv)
	if !cap.Valid() {
		t.Fatal("expected valid capability")
	}

	ctx := &Context{k: k, taskID: 1}
	ch, ok := ctx.RecvChan(cap.Restrict(RightRecv))
	if !ok || ch == nil {
		t.Fatal("expected recv channel")
	}

	close(k.endpoints[cap.ep].ch)

	if _, ok := ctx.Recv(cap.Restrict(RightRecv)); ok {
		t.Fatal("expected Recv to fail after channel close")
	}
	if _, ok := ctx.TryRecv(cap.Restrict(RightRecv)); ok {
		t.Fatal("expected TryRecv to fail after channel close")
	}
}

func TestContextSendClosed(t *testing.T) {
	k := New()
	cap := k.NewEndpoint(RightSend | RightRecv)
	if !cap.Valid() {
		t.Fatal("expected valid capability")
	}

	ctx := &Context{k: k, taskID: 1}
	close(k.endpoints[cap.ep].ch)

	res := ctx.SendToCapResult(cap.Restrict(RightSend), 1, []byte("x"), Capability{})
	if res != SendErrNoEndpoint {
		t.Fatalf("expected SendErrNoEndpoint, got %s", res)
	}
}

func TestRestrictDropsRights(t *testing.T) {
	k := New()
	cap := k.NewEndpoint(RightSend | RightRecv)

	sendOnly := cap.Restrict(RightSend)
	if !sendOnly.Valid() {
		t.Fatal("expected valid send-only capability")
	}

	ctx := &Context{k: k, taskID: 1}
	if _, ok := ctx.RecvChan(sendOnly); ok {
		t.Fatal("expected RecvChan to refuse a send-only capability")
	}

	recvOnly := cap.Restrict(RightRecv)
	res := ctx.SendToCapResult(recvOnly, 1, nil, Capability{})
	if res != SendErrToNoSendRight {
		t.Fatalf("expected SendErrToNoSendRight, got %s", res)
	}

	if cap.Restrict(0).Valid() {
		t.Fatal("expected empty restriction to be invalid")
	}
}

func TestSendRecvRoundTrip(t *testing.T) {
	k := New()
	cap := k.NewEndpoint(RightSend | RightRecv)
	ctx := &Context{k: k, taskID: 1}

	if !ctx.SendTo(cap.Restrict(RightSend), 7, []byte("abc")) {
		t.Fatal("expected send to succeed")
	}

	msg, ok := ctx.TryRecv(cap.Restrict(RightRecv))
	if !ok {
		t.Fatal("expected a queued message")
	}
	if msg.Kind != 7 {
		t.Fatalf("kind = %d, want 7", msg.Kind)
	}
	if string(msg.Payload()) != "abc" {
		t.Fatalf("payload = %q, want \"abc\"", msg.Payload())
	}
}
